package tls_test

import (
	sharedtesting "code.cloudfoundry.org/task-dispatcher/internal/testing"
	"code.cloudfoundry.org/task-dispatcher/internal/tls"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TLS", func() {
	It("reports whether any credential is set", func() {
		Expect(tls.TLS{}.HasAnyCredential()).To(BeFalse())
		Expect(tls.TLS{CAPath: "ca"}.HasAnyCredential()).To(BeTrue())
	})

	It("builds server and client credentials from files", func() {
		certs := sharedtesting.DispatcherTestCerts
		t := tls.TLS{
			CAPath:   certs.CA(),
			CertPath: certs.Cert("task-dispatcher"),
			KeyPath:  certs.Key("task-dispatcher"),
		}

		serverCreds, err := t.ServerCredentials()
		Expect(err).ToNot(HaveOccurred())
		Expect(serverCreds).ToNot(BeNil())

		clientCreds, err := t.ClientCredentials("task-dispatcher")
		Expect(err).ToNot(HaveOccurred())
		Expect(clientCreds).ToNot(BeNil())
	})

	It("errors on unreadable credential files", func() {
		t := tls.TLS{
			CAPath:   "/does/not/exist/ca.crt",
			CertPath: "/does/not/exist/cert.crt",
			KeyPath:  "/does/not/exist/cert.key",
		}

		_, err := t.ServerCredentials()
		Expect(err).To(HaveOccurred())

		_, err = t.ClientCredentials("task-dispatcher")
		Expect(err).To(HaveOccurred())
	})
})
