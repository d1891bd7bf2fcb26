// Package catalog holds the built-in challenge banks. Content is authored
// data: each challenge pairs broken code with its known-correct fix and, where
// one applies, the heuristic rule tag the validator may fall back to.
package catalog

import "codefix-quiz-service/internal/domain"

// Banks returns the built-in per-language challenge banks. The returned map
// is freshly built on every call so callers can never mutate shared state.
func Banks() map[domain.Language]domain.ChallengeBank {
	return map[domain.Language]domain.ChallengeBank{
		domain.LangPython: {Language: domain.LangPython, Challenges: pythonChallenges()},
		domain.LangJava:   {Language: domain.LangJava, Challenges: javaChallenges()},
		domain.LangHTML:   {Language: domain.LangHTML, Challenges: htmlChallenges()},
		domain.LangCSS:    {Language: domain.LangCSS, Challenges: cssChallenges()},
	}
}

func pythonChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:          1,
			Description: "Fix the missing closing parenthesis in the print statement",
			BrokenCode: `name = "Alice"
print("Hello, " + name`,
			CorrectCode: `name = "Alice"
print("Hello, " + name)`,
			ExpectedOutput: "Hello, Alice",
			CurrentOutput:  "SyntaxError: unexpected EOF while parsing",
			Hint:           "Check for missing closing parenthesis in the print statement",
			Rule:           domain.RuleClosingParen,
		},
		{
			ID:          2,
			Description: "Fix the indentation error in the if statement",
			BrokenCode: `age = 18
if age >= 18:
print("You can vote!")`,
			CorrectCode: `age = 18
if age >= 18:
    print("You can vote!")`,
			ExpectedOutput: "You can vote!",
			CurrentOutput:  "IndentationError: expected an indented block",
			Hint:           "Python requires proper indentation for code blocks",
			Rule:           domain.RuleIndentation,
		},
		{
			ID:          3,
			Description: "Fix the variable name and string quotes",
			BrokenCode: `user_name = 'John'
print("Welcome, " + userName + "!")`,
			CorrectCode: `user_name = 'John'
print("Welcome, " + user_name + "!")`,
			ExpectedOutput: "Welcome, John!",
			CurrentOutput:  "NameError: name 'userName' is not defined",
			Hint:           "Check the variable name - Python is case sensitive",
		},
		{
			ID:          4,
			Description: "Fix the missing colon in the function definition",
			BrokenCode: `def greet(name)
    return "Hello, " + name

print(greet("Bob"))`,
			CorrectCode: `def greet(name):
    return "Hello, " + name

print(greet("Bob"))`,
			ExpectedOutput: "Hello, Bob",
			CurrentOutput:  "SyntaxError: invalid syntax",
			Hint:           "Function definitions need a colon at the end",
			Rule:           domain.RuleColon,
		},
		{
			ID:          5,
			Description: "Fix the missing colon in the for loop",
			BrokenCode: `for i in range(3)
    print(i)`,
			CorrectCode: `for i in range(3):
    print(i)`,
			ExpectedOutput: "0\n1\n2",
			CurrentOutput:  "SyntaxError: invalid syntax",
			Hint:           "For loops need a colon at the end",
			Rule:           domain.RuleColon,
		},
		{
			ID:          6,
			Description: "Fix the string concatenation",
			BrokenCode: `age = 25
print("I am " + age + " years old")`,
			CorrectCode: `age = 25
print("I am " + str(age) + " years old")`,
			ExpectedOutput: "I am 25 years old",
			CurrentOutput:  `TypeError: can only concatenate str (not "int") to str`,
			Hint:           "Convert the integer to string before concatenation",
		},
		{
			ID:          7,
			Description: "Fix the boolean comparison",
			BrokenCode: `is_student = True
if is_student = True:
    print("Student discount applied")`,
			CorrectCode: `is_student = True
if is_student == True:
    print("Student discount applied")`,
			ExpectedOutput: "Student discount applied",
			CurrentOutput:  "SyntaxError: invalid syntax",
			Hint:           "Use == for comparison, = is for assignment",
		},
		{
			ID:          8,
			Description: "Fix the import statement and function call",
			BrokenCode: `import math
result = Math.sqrt(16)
print(result)`,
			CorrectCode: `import math
result = math.sqrt(16)
print(result)`,
			ExpectedOutput: "4.0",
			CurrentOutput:  "NameError: name 'Math' is not defined",
			Hint:           "Python is case-sensitive, use lowercase 'math'",
		},
	}
}

func javaChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:          1,
			Description: "Fix the missing semicolon",
			BrokenCode: `public class Hello {
    public static void main(String[] args) {
        System.out.println("Hello World")
    }
}`,
			CorrectCode: `public class Hello {
    public static void main(String[] args) {
        System.out.println("Hello World");
    }
}`,
			ExpectedOutput: "Hello World",
			CurrentOutput:  "Compilation error: ';' expected",
			Hint:           "Java statements must end with a semicolon",
			Rule:           domain.RuleSemicolonCount,
		},
		{
			ID:          2,
			Description: "Fix the missing semicolon in the variable declaration",
			BrokenCode: `public class Variables {
    public static void main(String[] args) {
        int age = 25
        System.out.println("Age: " + age);
    }
}`,
			CorrectCode: `public class Variables {
    public static void main(String[] args) {
        int age = 25;
        System.out.println("Age: " + age);
    }
}`,
			ExpectedOutput: "Age: 25",
			CurrentOutput:  "Compilation error: ';' expected",
			Hint:           "Variable declarations need semicolons",
			Rule:           domain.RuleSemicolonCount,
		},
		{
			ID:          3,
			Description: "Fix the unclosed string literal",
			BrokenCode: `public class StringTest {
    public static void main(String[] args) {
        String name = "Alice;
        System.out.println(name);
    }
}`,
			CorrectCode: `public class StringTest {
    public static void main(String[] args) {
        String name = "Alice";
        System.out.println(name);
    }
}`,
			ExpectedOutput: "Alice",
			CurrentOutput:  "Compilation error: unclosed string literal",
			Hint:           "String literals need closing quotes",
		},
		{
			ID:          4,
			Description: "Fix the missing semicolon in the method call",
			BrokenCode: `public class Methods {
    public static void greet(String name) {
        System.out.println("Hello, " + name);
    }

    public static void main(String[] args) {
        greet("Bob")
    }
}`,
			CorrectCode: `public class Methods {
    public static void greet(String name) {
        System.out.println("Hello, " + name);
    }

    public static void main(String[] args) {
        greet("Bob");
    }
}`,
			ExpectedOutput: "Hello, Bob",
			CurrentOutput:  "Compilation error: ';' expected",
			Hint:           "Method calls need semicolons",
			Rule:           domain.RuleSemicolonCount,
		},
		{
			ID:          5,
			Description: "Fix the missing semicolon in the loop body",
			BrokenCode: `public class Loops {
    public static void main(String[] args) {
        for (int i = 0; i < 3; i++) {
            System.out.println(i)
        }
    }
}`,
			CorrectCode: `public class Loops {
    public static void main(String[] args) {
        for (int i = 0; i < 3; i++) {
            System.out.println(i);
        }
    }
}`,
			ExpectedOutput: "0\n1\n2",
			CurrentOutput:  "Compilation error: ';' expected",
			Hint:           "Statements in loops need semicolons",
			Rule:           domain.RuleSemicolonCount,
		},
	}
}

func htmlChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:          1,
			Description: "Fix the missing closing tag for the heading",
			BrokenCode: `<html>
<body>
    <h1>Welcome to my website
    <p>This is a paragraph.</p>
</body>
</html>`,
			CorrectCode: `<html>
<body>
    <h1>Welcome to my website</h1>
    <p>This is a paragraph.</p>
</body>
</html>`,
			ExpectedOutput: "Properly closed heading tag",
			CurrentOutput:  "Unclosed h1 tag error",
			Hint:           "HTML tags must be closed with </tagname>",
			Rule:           domain.RuleClosingTag,
		},
		{
			ID:          2,
			Description: "Fix the missing closing quote in the image tag",
			BrokenCode: `<html>
<body>
    <img src="photo.jpg alt="My Photo">
    <p>Here is my photo!</p>
</body>
</html>`,
			CorrectCode: `<html>
<body>
    <img src="photo.jpg" alt="My Photo">
    <p>Here is my photo!</p>
</body>
</html>`,
			ExpectedOutput: "Properly quoted image attributes",
			CurrentOutput:  "Syntax error in img tag",
			Hint:           "All HTML attributes need closing quotes",
			Rule:           domain.RuleBalancedQuotes,
		},
		{
			ID:          3,
			Description: "Fix the missing closing tag for the paragraph",
			BrokenCode: `<html>
<body>
    <h1>My Blog</h1>
    <p>This is my first blog post.
    <p>This is my second blog post.</p>
</body>
</html>`,
			CorrectCode: `<html>
<body>
    <h1>My Blog</h1>
    <p>This is my first blog post.</p>
    <p>This is my second blog post.</p>
</body>
</html>`,
			ExpectedOutput: "Both paragraphs properly closed",
			CurrentOutput:  "Unclosed paragraph tag",
			Hint:           "Every opening tag needs a closing tag",
			Rule:           domain.RuleClosingTag,
		},
		{
			ID:          4,
			Description: "Fix the missing closing tag for the link",
			BrokenCode: `<html>
<body>
    <h1>My Links</h1>
    <a href="https://google.com">Visit Google
    <p>Click the link above!</p>
</body>
</html>`,
			CorrectCode: `<html>
<body>
    <h1>My Links</h1>
    <a href="https://google.com">Visit Google</a>
    <p>Click the link above!</p>
</body>
</html>`,
			ExpectedOutput: "Properly closed link tag",
			CurrentOutput:  "Unclosed anchor tag",
			Hint:           "Links need closing </a> tags",
			Rule:           domain.RuleClosingTag,
		},
		{
			ID:          5,
			Description: "Fix the missing opening quote in the link",
			BrokenCode: `<html>
<body>
    <h1>Contact Me</h1>
    <a href=mailto:john@email.com">Send Email</a>
</body>
</html>`,
			CorrectCode: `<html>
<body>
    <h1>Contact Me</h1>
    <a href="mailto:john@email.com">Send Email</a>
</body>
</html>`,
			ExpectedOutput: "Properly quoted href attribute",
			CurrentOutput:  "Syntax error in href attribute",
			Hint:           "Attributes need both opening and closing quotes",
			Rule:           domain.RuleBalancedQuotes,
		},
	}
}

func cssChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:          1,
			Description: "Fix the missing semicolon in CSS",
			BrokenCode: `.container {
    width: 100%
    height: 200px;
    background-color: blue;
}`,
			CorrectCode: `.container {
    width: 100%;
    height: 200px;
    background-color: blue;
}`,
			ExpectedOutput: "Valid CSS with proper syntax",
			CurrentOutput:  "CSS parsing error",
			Hint:           "CSS properties must end with semicolons",
			Rule:           domain.RuleSemicolonCount,
		},
		{
			ID:          2,
			Description: "Fix the missing closing brace",
			BrokenCode: `.header {
    background-color: red;
    padding: 20px;

.footer {
    background-color: blue;
}`,
			CorrectCode: `.header {
    background-color: red;
    padding: 20px;
}

.footer {
    background-color: blue;
}`,
			ExpectedOutput: "Properly closed CSS rules",
			CurrentOutput:  "CSS syntax error - missing brace",
			Hint:           "CSS rules must have closing braces",
			Rule:           domain.RuleBraceBalance,
		},
		{
			ID:          3,
			Description: "Fix the invalid property value",
			BrokenCode: `.box {
    width: 200;
    height: 100px;
    margin: 10px;
}`,
			CorrectCode: `.box {
    width: 200px;
    height: 100px;
    margin: 10px;
}`,
			ExpectedOutput: "Valid CSS with units",
			CurrentOutput:  "Invalid property value",
			Hint:           "CSS length values need units",
		},
		{
			ID:          4,
			Description: "Fix the color syntax",
			BrokenCode: `.text {
    color: #ff000;
    font-size: 16px;
}`,
			CorrectCode: `.text {
    color: #ff0000;
    font-size: 16px;
}`,
			ExpectedOutput: "Valid hex color",
			CurrentOutput:  "Invalid color value",
			Hint:           "Hex colors need 6 digits",
		},
		{
			ID:          5,
			Description: "Fix the missing semicolon in the selector block",
			BrokenCode: `div .class {
    background: white;
}

#id element {
    color: black
}`,
			CorrectCode: `div .class {
    background: white;
}

#id element {
    color: black;
}`,
			ExpectedOutput: "Valid CSS selectors",
			CurrentOutput:  "Missing semicolon",
			Hint:           "All CSS properties need semicolons",
			Rule:           domain.RuleSemicolonCount,
		},
	}
}
