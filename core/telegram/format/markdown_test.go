package format

import "testing"

func TestEscapeMarkdownV1(t *testing.T) {
	out, err := EscapeMarkdown("a_b*c[d", MarkdownV1)
	if err != nil {
		t.Fatalf("escape: %v", err)
	}
	if out != `a\_b\*c\[d` {
		t.Fatalf("out = %q", out)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	out, err := EscapeMarkdown("10.7 cm flux!", MarkdownV2)
	if err != nil {
		t.Fatalf("escape: %v", err)
	}
	if out != `10\.7 cm flux\!` {
		t.Fatalf("out = %q", out)
	}
}

func TestEscapeMarkdownUnknownVersion(t *testing.T) {
	if _, err := EscapeMarkdown("x", 3); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}
