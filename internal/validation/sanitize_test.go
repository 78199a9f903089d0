package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Ann&lt;&#x2F;b&gt;", Escape("<b>Ann</b>"))
	assert.Equal(t, "Tom &amp; &quot;Jerry&quot; &#x27;x&#x27; &#x5C; &#96;", Escape("Tom & \"Jerry\" 'x' \\ `"))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ann@X.com", "ann@x.com"},
		{"John.Doe+news@gmail.com", "johndoe@gmail.com"},
		{"john.doe@googlemail.com", "johndoe@gmail.com"},
		{"ann+work@outlook.com", "ann@outlook.com"},
		{"ann+work@icloud.com", "ann@icloud.com"},
		{"ann+work@example.com", "ann+work@example.com"},
		{"ann-smith-tag@yahoo.com", "ann-smith@yahoo.com"},
		{"ann@yandex.com", "ann@yandex.ru"},
		{"not-an-email", "not-an-email"},
		{"+tag@gmail.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.in))
		})
	}
}
