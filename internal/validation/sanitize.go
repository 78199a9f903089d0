package validation

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-significant characters with entities. Unlike
// html.EscapeString it also covers '/', '\' and '`'.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

var (
	gmailDomains = map[string]bool{
		"gmail.com":      true,
		"googlemail.com": true,
	}

	outlookDomains = map[string]bool{
		"hotmail.com":   true,
		"hotmail.co.uk": true,
		"hotmail.de":    true,
		"hotmail.fr":    true,
		"hotmail.it":    true,
		"live.com":      true,
		"live.co.uk":    true,
		"live.de":       true,
		"live.fr":       true,
		"msn.com":       true,
		"outlook.com":   true,
		"outlook.de":    true,
		"outlook.fr":    true,
		"passport.com":  true,
	}

	icloudDomains = map[string]bool{
		"icloud.com": true,
		"me.com":     true,
	}

	yahooDomains = map[string]bool{
		"rocketmail.com": true,
		"yahoo.ca":       true,
		"yahoo.co.uk":    true,
		"yahoo.com":      true,
		"yahoo.de":       true,
		"yahoo.fr":       true,
		"yahoo.in":       true,
		"yahoo.it":       true,
		"ymail.com":      true,
	}

	yandexDomains = map[string]bool{
		"ya.ru":      true,
		"yandex.by":  true,
		"yandex.com": true,
		"yandex.kz":  true,
		"yandex.ru":  true,
		"yandex.ua":  true,
	}
)

// NormalizeEmail canonicalizes an email address:
//
//   - the address is lower-cased
//   - Gmail: dots and "+tag" removed from the local part, googlemail.com becomes gmail.com
//   - Outlook, Hotmail, Live and iCloud: "+tag" removed
//   - Yahoo: the trailing "-tag" removed
//   - Yandex: every Yandex domain becomes yandex.ru
//
// Input without '@' is returned unchanged. An address whose local part
// normalizes to nothing yields "".
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	local := strings.ToLower(email[:at])
	domain := strings.ToLower(email[at+1:])

	switch {
	case gmailDomains[domain]:
		local, _, _ = strings.Cut(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"

	case outlookDomains[domain], icloudDomains[domain]:
		local, _, _ = strings.Cut(local, "+")

	case yahooDomains[domain]:
		if i := strings.LastIndex(local, "-"); i >= 0 {
			local = local[:i]
		}

	case yandexDomains[domain]:
		domain = "yandex.ru"
	}

	if local == "" {
		return ""
	}
	return local + "@" + domain
}
