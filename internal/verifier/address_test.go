package verifier

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name       string
		address    string
		wantDomain string
		wantOK     bool
	}{
		{
			name:       "simple address",
			address:    "user@example.com",
			wantDomain: "example.com",
			wantOK:     true,
		},
		{
			name:       "domain is lower-cased",
			address:    "user@EXAMPLE.COM",
			wantDomain: "example.com",
			wantOK:     true,
		},
		{
			name:       "subdomain",
			address:    "user@mail.example.co.uk",
			wantDomain: "mail.example.co.uk",
			wantOK:     true,
		},
		{
			name:       "internationalized domain",
			address:    "user@пример.рф",
			wantDomain: "пример.рф",
			wantOK:     true,
		},
		{
			name:    "no at sign",
			address: "bad-address",
		},
		{
			name:    "missing local part",
			address: "@example.com",
		},
		{
			name:    "missing domain",
			address: "user@",
		},
		{
			name:    "domain without dot",
			address: "user@localhost",
		},
		{
			name:    "second at sign",
			address: "user@foo@example.com",
		},
		{
			name:    "whitespace in local part",
			address: "us er@example.com",
		},
		{
			name:    "whitespace in domain",
			address: "user@exa mple.com",
		},
		{
			name:    "empty string",
			address: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, ok := parseAddress(tt.address)
			if ok != tt.wantOK {
				t.Fatalf("parseAddress(%q) ok = %v, want %v", tt.address, ok, tt.wantOK)
			}
			if domain != tt.wantDomain {
				t.Errorf("parseAddress(%q) domain = %q, want %q", tt.address, domain, tt.wantDomain)
			}
		})
	}
}

func TestEncodeDomain(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		want    string
		wantErr bool
	}{
		{
			name:   "ascii passes through",
			domain: "example.com",
			want:   "example.com",
		},
		{
			name:   "cyrillic domain is punycoded",
			domain: "пример.рф",
			want:   "xn--e1afmkfd.xn--p1ai",
		},
		{
			name:    "underscore is disallowed",
			domain:  "foo_bar.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeDomain(tt.domain)
			if (err != nil) != tt.wantErr {
				t.Fatalf("encodeDomain(%q) error = %v, wantErr %v", tt.domain, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("encodeDomain(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}
