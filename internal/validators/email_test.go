package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Maria@Exemplo.COM ", "maria@exemplo.com"},
		{"joao@liz.app", "joao@liz.app"},
		{"\tADMIN@LIZ.APP\n", "admin@liz.app"},
	}

	for _, c := range cases {
		if got := NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDomainOf_RejectsMalformedAddresses(t *testing.T) {
	bad := []string{
		"",
		"semarroba",
		"@dominio.com",
		"maria@",
		"maria@sem-ponto",
		"maria@.comeca-com-ponto.com",
		"maria@termina-com-ponto.",
		"maria@dois @espacos.com",
	}

	for _, email := range bad {
		if _, ok := domainOf(email); ok {
			t.Errorf("domainOf(%q) accepted a malformed address", email)
		}
	}

	domain, ok := domainOf("maria@exemplo.com.br")
	if !ok || domain != "exemplo.com.br" {
		t.Errorf("domainOf valid address = %q, %v", domain, ok)
	}
}

func TestHasDeliverableDomain_MalformedShortCircuits(t *testing.T) {
	// Sintaxe inválida nunca chega ao DNS.
	if HasDeliverableDomain("sem-dominio") {
		t.Error("malformed address reported deliverable")
	}
}
