package app_test

import (
	"strings"
	"testing"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/domain"
)

func TestNormalizeIsIdempotent(t *testing.T) {
	samples := []string{
		"name = \"Alice\"\nprint(\"Hello, \" + name)",
		"public class Hello {\r\n\tint x = 1;\r\n}",
		".container {\n    width: 100%;\n\n\n\n    height: 200px;\n}",
		"if a == b:\n    pass",
		"",
	}
	for _, sample := range samples {
		once := app.Normalize(sample)
		twice := app.Normalize(once)
		if once != twice {
			t.Fatalf("normalize not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

func TestStageAIsWhitespaceInsensitive(t *testing.T) {
	correct := "age = 18\nif age >= 18:\n    print(\"You can vote!\")"
	variants := []string{
		"age=18\nif age>=18:\n    print(\"You can vote!\")",
		"age = 18\n\n\n\nif age >= 18:\n\tprint(\"You can vote!\")",
		"  age  =  18\nif  age  >=  18 :\n        print( \"You can vote!\" )  ",
		"age = 18\r\nif age >= 18:\r\n    print(\"You can vote!\")",
	}
	for _, variant := range variants {
		if !app.Accept(variant, correct, domain.LangPython, domain.RuleNone) {
			t.Fatalf("expected acceptance for variant %q", variant)
		}
	}
}

func TestStageAIsCaseInsensitive(t *testing.T) {
	correct := "SELECT = 1"
	if !app.Accept(strings.ToUpper(correct), correct, domain.LangPython, domain.RuleNone) {
		t.Fatalf("expected uppercase input accepted")
	}
	if !app.Accept(strings.ToLower(correct), strings.ToUpper(correct), domain.LangPython, domain.RuleNone) {
		t.Fatalf("expected lowercase input accepted against uppercase correct text")
	}
}

func TestStageARejectsTokenDifferences(t *testing.T) {
	correct := "numbers = [1, 2, 3]\nprint(numbers[2])"
	wrong := "numbers = [1, 2, 3]\nprint(numbers[3])"
	if app.Accept(wrong, correct, domain.LangPython, domain.RuleNone) {
		t.Fatalf("expected token difference rejected")
	}
}

func TestDoubleEqualsSurvivesNormalization(t *testing.T) {
	// "a == b" and "a = = b" normalize to the same thing, and neither loses
	// the second equals sign.
	if app.Normalize("if a == b:") != app.Normalize("if a==b:") {
		t.Fatalf("expected == spacing to normalize away")
	}
	if app.Normalize("a == b") == app.Normalize("a = b") {
		t.Fatalf("expected == and = to stay distinct")
	}
}

func TestEmptyUserTextNeverAccepted(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		// RuleClosingTag would otherwise pass trivially (0 opens <= 0 closes).
		if app.Accept(input, "<h1>hi</h1>", domain.LangHTML, domain.RuleClosingTag) {
			t.Fatalf("expected empty input %q rejected", input)
		}
		if app.Accept(input, "print(1)", domain.LangPython, domain.RuleNone) {
			t.Fatalf("expected empty input %q rejected", input)
		}
	}
}

func TestPythonHeuristics(t *testing.T) {
	// Not an exact match for the canonical fix, but satisfies the narrow rule.
	if !app.Accept(`print("hi there")`, `print("hello")`, domain.LangPython, domain.RuleClosingParen) {
		t.Fatalf("expected closing-paren heuristic acceptance")
	}
	if !app.Accept("if x:\n    print(x)\nextra = 1", "if x:\n    print(x)", domain.LangPython, domain.RuleIndentation) {
		t.Fatalf("expected indentation heuristic acceptance")
	}
	if !app.Accept("for i in range(2):\n  pass # extra", "for i in range(2):\n    pass", domain.LangPython, domain.RuleColon) {
		t.Fatalf("expected colon heuristic acceptance")
	}
	if app.Accept("x = 1", "y: int = 1", domain.LangPython, domain.RuleColon) {
		t.Fatalf("expected colon heuristic rejection without a colon")
	}
}

func TestSemicolonCountHeuristic(t *testing.T) {
	correct := "int a = 1;\nint b = 2;"
	if !app.Accept("int a = 1; int b = 2; int c = 3;", correct, domain.LangJava, domain.RuleSemicolonCount) {
		t.Fatalf("expected enough semicolons accepted")
	}
	if app.Accept("int a = 1;", correct, domain.LangJava, domain.RuleSemicolonCount) {
		t.Fatalf("expected too few semicolons rejected")
	}
	if !app.Accept("a { color: red; top: 0; }", "a { color: red; }", domain.LangCSS, domain.RuleSemicolonCount) {
		t.Fatalf("expected css semicolon heuristic acceptance")
	}
}

func TestHTMLClosingTagHeuristic(t *testing.T) {
	correct := "<div><p>hi</p></div>"
	if !app.Accept("<p>different text</p></div>", correct, domain.LangHTML, domain.RuleClosingTag) {
		t.Fatalf("expected balanced tags accepted")
	}
	if app.Accept("<div><p>hi</p>", correct, domain.LangHTML, domain.RuleClosingTag) {
		t.Fatalf("expected more opens than closes rejected")
	}
}

func TestHTMLQuoteHeuristicAcceptsBalancedQuotes(t *testing.T) {
	correct := `<img src="photo.jpg" alt="My Photo">`
	balanced := `<img src="pic.jpg" alt="Other">`
	unbalanced := `<img src="pic.jpg alt="Other">`
	if !app.Accept(balanced, correct, domain.LangHTML, domain.RuleBalancedQuotes) {
		t.Fatalf("expected balanced quote count accepted")
	}
	if app.Accept(unbalanced, correct, domain.LangHTML, domain.RuleBalancedQuotes) {
		t.Fatalf("expected unbalanced quote count rejected")
	}
}

func TestCSSBraceBalanceHeuristic(t *testing.T) {
	correct := ".a {\n  color: red;\n}\n.b {\n  color: blue;\n}"
	if !app.Accept(".a { color: green; }\n.b { color: blue; }", correct, domain.LangCSS, domain.RuleBraceBalance) {
		t.Fatalf("expected balanced braces accepted")
	}
	if app.Accept(".a { color: green;\n.b { color: blue; }", correct, domain.LangCSS, domain.RuleBraceBalance) {
		t.Fatalf("expected unbalanced braces rejected")
	}
}

func TestUnknownRuleContributesNothing(t *testing.T) {
	if app.Accept("totally wrong", "the right answer", domain.LangJava, domain.RuleBraceBalance) {
		t.Fatalf("expected unmatched language/rule pair rejected")
	}
}
