package booking

import "testing"

func TestPhoneDigits(t *testing.T) {
	if got := PhoneDigits("(11) 98765-4321"); got != "11987654321" {
		t.Fatalf("PhoneDigits = %q", got)
	}
	if got := PhoneDigits("abc"); got != "" {
		t.Fatalf("PhoneDigits = %q", got)
	}
}

func TestValidateClient(t *testing.T) {
	tests := []struct {
		name      string
		client    string
		phone     string
		wantName  bool
		wantPhone bool
	}{
		{"valid", "João Silva", "(11) 98765-4321", false, false},
		{"blank name", "   ", "11987654321", true, false},
		{"short phone", "João Silva", "123", false, true},
		{"both invalid", "", "123", true, true},
		{"exactly ten digits", "Ana", "1187654321", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateClient(tt.client, tt.phone)
			if (errs.ClientName != "") != tt.wantName {
				t.Errorf("ClientName error = %q, want error: %v", errs.ClientName, tt.wantName)
			}
			if (errs.ClientPhone != "") != tt.wantPhone {
				t.Errorf("ClientPhone error = %q, want error: %v", errs.ClientPhone, tt.wantPhone)
			}
		})
	}
}
