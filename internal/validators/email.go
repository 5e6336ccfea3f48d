package validators

import (
	"net"
	"strings"
)

// NormalizeEmail devolve o e-mail na forma canônica usada como chave
// única na tabela de usuários.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasDeliverableDomain faz uma checagem barata de entregabilidade no
// cadastro: sintaxe mínima e depois DNS (MX, com fallback para A/AAAA
// em domínios que recebem e-mail direto no host).
func HasDeliverableDomain(email string) bool {
	domain, ok := domainOf(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func domainOf(email string) (string, bool) {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return "", false
	}
	if strings.ContainsAny(domain, " @") || !strings.Contains(domain, ".") {
		return "", false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", false
	}
	return domain, true
}
