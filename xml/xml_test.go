package xml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/zoobzio/hush"
	hushtest "github.com/zoobzio/hush/testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type Login struct {
		XMLName  xml.Name            `xml:"login"`
		User     string              `xml:"user,attr"`
		Password hush.Secret[string] `xml:"password"`
		Pin      hush.Secret[int]    `xml:"pin,attr"`
	}

	var l Login
	if err := c.Unmarshal([]byte(`<login user="alice" pin="1234"><password>hunter2</password></login>`), &l); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if l.Password.Inner() != "hunter2" || l.Pin.Inner() != 1234 {
		t.Errorf("Unmarshal() = %q, %d; want %q, 1234", l.Password.Inner(), l.Pin.Inner(), "hunter2")
	}

	data, err := c.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `<login user="alice" pin="&lt;hidden&gt;"><password>&lt;hidden&gt;</password></login>`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("<unclosed"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshal_CDATA(t *testing.T) {
	c := New()

	var v struct {
		Key hush.Secret[string] `xml:"key"`
	}
	if err := c.Unmarshal([]byte(`<cfg><key><![CDATA[a<b&c]]></key></cfg>`), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v.Key.Inner() != "a<b&c" {
		t.Errorf("Key = %q, want %q", v.Key.Inner(), "a<b&c")
	}
}

func TestSecretRedacted(t *testing.T) {
	c := New()

	data, err := c.Marshal(hushtest.NewCredentials())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(data), hushtest.TestPassword) {
		t.Errorf("Marshal() leaked password: %s", data)
	}

	var plain hushtest.PlainCredentials
	if err := c.Unmarshal(data, &plain); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if plain.Password != hush.Placeholder {
		t.Errorf("Password = %q, want %q", plain.Password, hush.Placeholder)
	}
	if plain.APIKey != hushtest.TestAPIKey {
		t.Errorf("APIKey = %q, want %q", plain.APIKey, hushtest.TestAPIKey)
	}
}

func TestSecretTransparent(t *testing.T) {
	c := New()

	data, err := c.Marshal(hushtest.PlainCredentials{
		User:     hushtest.TestUser,
		Password: hushtest.TestPassword,
		APIKey:   hushtest.TestAPIKey,
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var creds hushtest.Credentials
	if err := c.Unmarshal(data, &creds); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if creds.Password.Inner() != hushtest.TestPassword {
		t.Errorf("Password = %q, want %q", creds.Password.Inner(), hushtest.TestPassword)
	}
	if creds.APIKey.Inner() != hushtest.TestAPIKey {
		t.Errorf("APIKey = %q, want %q", creds.APIKey.Inner(), hushtest.TestAPIKey)
	}
}

func TestDisclose(t *testing.T) {
	got, err := Disclose("password", hush.From("a<b"))
	if err != nil {
		t.Fatalf("Disclose() error: %v", err)
	}

	want := `<password>a&lt;b</password>`
	if string(got) != want {
		t.Errorf("Disclose() = %s, want %s", got, want)
	}
}
