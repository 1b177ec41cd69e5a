package corpus

import "testing"

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{`<p>Foo, bar &amp; Wibble.</p>`, `Foo, bar & Wibble.`},
		{`<p>one</p><p>two</p>`, "one\n\ntwo"},
		{`foo<b>bar</b>`, `foobar`},
		{`<p class="wibble">text</p><script>var wibble=1;</script>`, `text`},
		{`plain`, `plain`},
		{``, ``},
	}

	for _, test := range tests {
		got := HTMLToText(test.in)
		if got != test.expect {
			t.Errorf("HTMLToText(%q) = %q (expected %q)", test.in, got, test.expect)
		}
	}
}
