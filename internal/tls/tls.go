package tls

import (
	"code.cloudfoundry.org/tlsconfig"
	"google.golang.org/grpc/credentials"
)

type TLS struct {
	CAPath   string `env:"CA_PATH,   report"`
	CertPath string `env:"CERT_PATH, report"`
	KeyPath  string `env:"KEY_PATH,  report"`
}

func (t TLS) HasAnyCredential() bool {
	return t.CAPath != "" || t.CertPath != "" || t.KeyPath != ""
}

// ServerCredentials builds gRPC transport credentials for a server that
// authenticates its clients against the configured CA.
func (t TLS) ServerCredentials() (credentials.TransportCredentials, error) {
	cfg, err := tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(t.CertPath, t.KeyPath),
	).Server(
		tlsconfig.WithClientAuthenticationFromFile(t.CAPath),
	)
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(cfg), nil
}

// ClientCredentials builds gRPC transport credentials for dialing a
// server presenting the given name.
func (t TLS) ClientCredentials(serverName string) (credentials.TransportCredentials, error) {
	cfg, err := tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(t.CertPath, t.KeyPath),
	).Client(
		tlsconfig.WithAuthorityFromFile(t.CAPath),
		tlsconfig.WithServerName(serverName),
	)
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(cfg), nil
}
