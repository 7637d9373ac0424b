package validate

import "testing"

func TestField(t *testing.T) {
	tests := []struct {
		name      string
		fieldType string
		value     string
		wantErr   error
	}{
		{"empty email is valid", "email", "", nil},
		{"valid email", "email", "ana@test.cl", nil},
		{"email missing tld", "email", "ana@test", ErrEmail},
		{"email with spaces", "email", "ana maria@test.cl", ErrEmail},
		{"valid phone formatted", "tel", "+56 9 1234 5678", nil},
		{"phone ten digits", "tel", "9123456789", nil},
		{"phone too short", "tel", "12345", ErrPhone},
		{"phone too long", "tel", "1234567890123", ErrPhone},
		{"url with scheme", "url", "https://example.cl/path", nil},
		{"url bare host", "url", "example.cl", nil},
		{"url no tld", "url", "example", ErrURL},
		{"color short hex", "color", "#fff", nil},
		{"color long hex", "color", "#6366F1", nil},
		{"color missing hash", "color", "6366f1", ErrColor},
		{"color wrong length", "color", "#ffff", ErrColor},
		{"unknown type is valid", "textarea", "<whatever>", nil},
		{"text type is valid", "text", "hola", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.fieldType, tt.value); got != tt.wantErr {
				t.Errorf("Field(%q, %q) = %v, want %v", tt.fieldType, tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestIsEmail_Length(t *testing.T) {
	long := ""
	for i := 0; i < 260; i++ {
		long += "a"
	}
	if IsEmail(long + "@x.cl") {
		t.Error("IsEmail should reject addresses over 254 chars")
	}
}
