package form

import (
	"bytes"
	"strings"
	"testing"
)

const sample = "companyName=Acme&contactName=Jo&email=a%40b.com&phone=1234567890" +
	"&contactMethod%5B%5D=Email&contactMethod%5B%5D=Phone&comments=ok"

func TestParse(t *testing.T) {
	d, err := Parse(sample + "&status=sent&responseDate=2024-05-01&rating=5&unknown=x&companyName=Other")
	if err != nil {
		t.Fatal(err)
	}

	want := Data{
		CompanyName:    "Acme",
		ContactName:    "Jo",
		Email:          "a@b.com",
		Phone:          "1234567890",
		Status:         "sent",
		ResponseDate:   "2024-05-01",
		Rating:         "5",
		ContactMethods: "Email, Phone",
		Comments:       "ok",
	}
	if d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
}

func TestParseMissingAndMalformed(t *testing.T) {
	d, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}

	if d != (Data{}) {
		t.Errorf("got %+v, want empty", d)
	}

	d, err = Parse("companyName=%zz&contactName=Jo+Doe&comments=50%25")
	if err == nil {
		t.Error("expected decoding error")
	}

	if d.CompanyName != "" || d.ContactName != "Jo Doe" || d.Comments != "50%" {
		t.Errorf("got %+v", d)
	}
}

func TestRender(t *testing.T) {
	d, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	page := buf.String()
	for _, s := range []string{"Acme", "Jo", "a@b.com", "1234567890", "Email, Phone", "ok", "<title>The result of the review</title>"} {
		if !strings.Contains(page, s) {
			t.Errorf("page does not contain %q", s)
		}
	}
}

func TestRenderEscapes(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Data{CompanyName: `<script>alert("x")</script>`, Comments: "a & b"}); err != nil {
		t.Fatal(err)
	}

	page := buf.String()
	if strings.Contains(page, "<script>") {
		t.Error("value was not escaped")
	}

	if !strings.Contains(page, "&lt;script&gt;") || !strings.Contains(page, "a &amp; b") {
		t.Errorf("unexpected page: %s", page)
	}
}
