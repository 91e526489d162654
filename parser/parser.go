package parser

import (
	"fmt"
	"strconv"

	"github.com/ember-lang/ember/ast"
	"github.com/ember-lang/ember/lexer"
	"github.com/ember-lang/ember/token"
)

// Setting the PEMDAS order of operations for later consideration.
const (
	_ int = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // < or >
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // someFunction(X)
	INDEX       // array[index]
)

// precedences maps a token type to its infix binding power, used by parseExpression to
// decide when to stop gobbling up an infix chain and let the caller have the token back.
var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

/*
Pratt Parser

A Pratt parser’s main idea is the association of parsing functions (which Pratt calls “semantic code”) with token types.
Whenever this token type is encountered, the parsing functions are called to parse the appropriate expression and
return an AST node that represents it.
Each token type can have up to two parsing functions associated with it, depending on whether the token is found in a prefix or an infix position.
*/

/*
Both of the following function types return an ast.Expression, since that’s what we’re here to parse.
Only the infixParseFn takes an argument: another ast.Expression. This argument is “left side” of the infix operator that’s being parsed.
A prefix operator doesn’t have a “left side”, per definition.

prefixParseFns gets called when we encounter the associated token type in prefix position and infixParseFn gets called
when we encounter the token type in infix position.
*/
type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(expression ast.Expression) ast.Expression
)

/*
Parser has the following fields:
-lexer is a pointer to an instance of the lexer, on which we repeatedly call NextToken() to get the next token in the input.
-errors holds a slice of strings containing any errors the parsing encounters
-currentToken and peekToken act exactly like the two “pointers” our lexer has: position and readPosition.
-prefixParseFns and infixParseFns maps ensure the correct prefixParseFn or infixParseFn for the current token type

Instead of pointing to a character in the input, they point to the current and the next token.

Both are important: we need to look at the currentToken, which is the current token under examination,
to decide what to do next, and we also need peekToken for this decision if currentToken doesn’t give us enough information.

Think of a single line only containing 5;. Then currentToken is a token.INT and we need peekToken to decide whether
we are at the end of the line or if we are at just the start of an arithmetic expression.
*/
type Parser struct {
	lexer        *lexer.Lexer
	errors       []string
	currentToken token.Token
	peekToken    token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New returns a pointer to a Parser
func New(l *lexer.Lexer) *Parser {
	parse := &Parser{
		lexer:  l,
		errors: []string{},
	}

	// initialize the prefixParseFns map on Parser and register parsing functions:
	// EX: if we encounter a token of type token.IDENT the parsing function to call is parseIdentifier, a method we defined on *Parser.
	parse.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	parse.registerPrefix(token.IDENT, parse.parseIdentifier)
	parse.registerPrefix(token.INT, parse.parseIntegerLiteral)
	parse.registerPrefix(token.STRING, parse.parseStringLiteral)
	parse.registerPrefix(token.BANG, parse.parsePrefixExpression)
	parse.registerPrefix(token.MINUS, parse.parsePrefixExpression)
	parse.registerPrefix(token.TRUE, parse.parseBoolean)
	parse.registerPrefix(token.FALSE, parse.parseBoolean)
	parse.registerPrefix(token.LPAREN, parse.parseGroupedExpression)
	parse.registerPrefix(token.IF, parse.parseIfExpression)
	parse.registerPrefix(token.FUNCTION, parse.parseFunctionLiteral)
	parse.registerPrefix(token.LBRACKET, parse.parseArrayLiteral)
	parse.registerPrefix(token.LBRACE, parse.parseHashLiteral)

	parse.infixParseFns = make(map[token.TokenType]infixParseFn)
	parse.registerInfix(token.PLUS, parse.parseInfixExpression)
	parse.registerInfix(token.MINUS, parse.parseInfixExpression)
	parse.registerInfix(token.SLASH, parse.parseInfixExpression)
	parse.registerInfix(token.ASTERISK, parse.parseInfixExpression)
	parse.registerInfix(token.PERCENT, parse.parseInfixExpression)
	parse.registerInfix(token.EQ, parse.parseInfixExpression)
	parse.registerInfix(token.NOT_EQ, parse.parseInfixExpression)
	parse.registerInfix(token.LT, parse.parseInfixExpression)
	parse.registerInfix(token.GT, parse.parseInfixExpression)
	parse.registerInfix(token.LPAREN, parse.parseCallExpression)
	parse.registerInfix(token.LBRACKET, parse.parseIndexExpression)

	// Read two tokens to set both currentToken and peekToken
	parse.nextToken()
	parse.nextToken()

	return parse
}

// nextToken is a small helper that advances both currentToken and peekToken
func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

/*
ParseProgram constructs the root node of the AST, an *ast.Program. It then iterates over every token in the input until
it encounters a token.EOF token. It does this by repeatedly calling nextToken, which advances both p.currentToken and p.peekToken.
In every iteration it calls parseStatement, whose job it is to parse a statement. If parseStatement returned something
other than nil, an ast.Statement, its return value is added to Statements slice of the AST root node.
When nothing is left to parse the *ast.Program root node is returned.
*/
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for p.currentToken.Type != token.EOF {
		statement := p.parseStatement()

		if statement != nil {
			program.Statements = append(program.Statements, statement)
		}
		p.nextToken()
	}
	return program
}

// parseStatement checks the Type of the current token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.currentToken.Type {
	case token.LET:
		// a failed let returns a nil *ast.LetStatement, which must not become a non-nil Statement
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
		return nil
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

/*
parseLetStatement constructs an *ast.LetStatement node with the token it’s currently sitting on (a token.LET token) and
then advances the tokens while making assertions about the next token with calls to expectPeek.

First it expects a token.IDENT token, which it then uses to construct an *ast.Identifier node. Then it expects an
equal sign, and parses the expression that follows at LOWEST precedence.
*/
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{
		Token: p.currentToken,
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{
		Token: p.currentToken,
		Value: p.currentToken.Literal,
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement constructs an ast.ReturnStatement, with the current token it’s sitting on as Token.
// It then brings the parser in place for the expression that comes next by calling nextToken() and parses
// that expression at LOWEST precedence. The trailing semicolon, like everywhere else, is optional.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	statement := &ast.ReturnStatement{Token: p.currentToken}
	p.nextToken()

	statement.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return statement
}

// currentTokenIs returns the bool repr of asserting if the current token is of an assumed type
func (p *Parser) currentTokenIs(t token.TokenType) bool {
	return p.currentToken.Type == t
}

// peekTokenIs returns the bool repr of asserting if the next token is of an assumed type
func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

/*
expectPeek method is one of the “assertion functions” nearly all parsers share. Their primary purpose is to enforce
the correctness of the order of tokens by checking the type of the next token.

Our expectPeek here checks the type of the peekToken and only if the type is correct does it advance the tokens by
calling nextToken.
*/

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	} else {
		p.peekError(t)
		return false
	}
}

/*
prefixParseFns gets called when we encounter the associated token type in prefix position and
infixParseFn gets called when we encounter the token type in infix position.
*/

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns a slice of strings containing all parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// peekError adds an error to p.errors when the type of peekToken does not match the expectation.
func (p *Parser) peekError(tok token.TokenType) {
	message := fmt.Sprintf("expected next token to be %s, got %s instead", tok, p.peekToken.Type)

	p.errors = append(p.errors, message)
}

/*
parseExpressionStatement builds an AST node and then attempts to fill its field by calling other parsing functions.
In this case there are a few differences though: we call parseExpression() with the constant LOWEST, and then we check
for an optional semicolon. Yes, it’s optional. If the peekToken is a token.SEMICOLON, we advance so it’s the currentToken.
If it’s not there, that’s okay too, we don’t add an error to the parser if it’s not there.
Expression statements have optional semicolons (which makes it easier to type something like 5 + 5 into the REPL later on).
*/
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	statement := &ast.ExpressionStatement{
		Token:      p.currentToken,
		Expression: nil,
	}

	statement.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return statement
}

/*
parseExpression checks if a parsing function is associated with p.currentToken.Type in the prefix position.
If true, the parsing function is called to produce the initial left-hand expression. Then, as long as the next
token isn't a semicolon and its precedence outranks the precedence passed in, we look up an infix parsing function
for it, advance, and let it fold the current left expression into a bigger one. This loop is the heart of the Pratt
parser: it's what lets "1 + 2 * 3" correctly bind the multiplication tighter than the addition.
*/
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.currentToken.Type]

	if prefix == nil {
		p.noPrefixParseFnError(p.currentToken.Type)
		return nil
	}

	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

// peekPrecedence returns the precedence associated with the peek token, or LOWEST if none is registered.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// currentPrecedence is peekPrecedence's sibling, used when parseInfixExpression decides what
// precedence to recurse with for its own right-hand side.
func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.currentToken.Type]; ok {
		return prec
	}
	return LOWEST
}

/*
parseIdentifier returns a *ast.Identifier with the current token in the Token field and the literal value of the token in Value.

Note: It doesn’t advance the tokens, it doesn’t call nextToken; we simply start with currentToken being the type of token
you’re associated with and return with currentToken being the last token that’s part of your expression type.
Never advance the tokens too far.
*/
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{
		Token: p.currentToken,
		Value: p.currentToken.Literal,
	}
}

// parseIntegerLiteral makes a call to strconv.ParseInt, which converts the string in p.currentToken.Literal into an int64.
// The int64 then gets saved to the Value field, and we return the newly constructed *ast.IntegerLiteral node.
// If that doesn’t work, we add a new error to the parser’s errors field.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.currentToken}

	value, err := strconv.ParseInt(p.currentToken.Literal, 0, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.currentToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value

	return lit
}

// parseStringLiteral is as uneventful as parsing gets: the lexer already stripped the quotes,
// so the token's literal IS the string's value.
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.currentToken, Value: p.currentToken.Literal}
}

// parseBoolean maps token.TRUE/token.FALSE directly onto an *ast.Boolean.
func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.currentToken, Value: p.currentTokenIs(token.TRUE)}
}

// noPrefixParseFnError just adds a formatted error message to our parser’s errors field.
func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	msg := fmt.Sprintf("no prefix parse function for %s found", t)
	p.errors = append(p.errors, msg)
}

/*
	parsePrefixExpression builds an AST node, in this case *ast.PrefixExpression, just like the parsing functions we saw before.

But then it does something different: it actually advances our tokens by calling p.nextToken().

When parsePrefixExpression is called, p.currentToken is either of type token.BANG or token.MINUS, because otherwise it
wouldn’t have been called. But in order to correctly parse a prefix expression like -5 more than one token has to be “consumed”.
So after using p.currentToken to build a *ast.PrefixExpression node, the method advances the tokens and calls parseExpression again.
This time with the precedence of prefix operators as argument.

Now, when parseExpression is called by parsePrefixExpression the tokens have been advanced and the current token is the
one after the prefix operator. In the case of -5, when parseExpression is called the p.currentToken.Type is token.INT.
parseExpression then checks the registered prefix parsing functions and finds parseIntegerLiteral, which builds
an *ast.IntegerLiteral node and returns it. parseExpression returns this newly constructed node and parsePrefixExpression
uses it to fill the Right field of *ast.PrefixExpression.
*/
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.currentToken,
		Operator: p.currentToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parseInfixExpression is called with the already-parsed left expression in hand. It grabs the
// operator and its precedence off the current token, advances past it, and recurses into
// parseExpression at that precedence to get the right-hand side - which is what makes the
// operators left-associative: a same-precedence operator immediately to the right will NOT
// be swallowed by this call, and instead gets picked up by the loop in the caller's parseExpression.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.currentToken,
		Operator: p.currentToken.Literal,
		Left:     left,
	}

	precedence := p.currentPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseGroupedExpression handles a parenthesized expression: advance past '(', parse at
// LOWEST so the inner expression resets precedence, then demand the closing ')'.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

// parseIfExpression parses `if (cond) { consequence } else { alternative }`, with the else
// branch optional.
func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.currentToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

// parseBlockStatement is entered with the current token already on '{'. It keeps parsing
// statements until it hits the matching '}' or runs out of input.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.currentToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.currentTokenIs(token.RBRACE) && !p.currentTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseFunctionLiteral parses `fn(params) { body }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.currentToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseFunctionParameters reads a possibly-empty, comma-separated list of identifiers
// between the '(' and ')' of a function literal.
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()

	ident := &ast.Identifier{Token: p.currentToken, Value: p.currentToken.Literal}
	identifiers = append(identifiers, ident)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		ident := &ast.Identifier{Token: p.currentToken, Value: p.currentToken.Literal}
		identifiers = append(identifiers, ident)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

// parseCallExpression is registered as the infix handler for '(': function(args) turns the
// already-parsed `function` expression into the Function field of a CallExpression, and
// its arguments are just a comma-separated expression list terminated by ')'.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.currentToken, Function: function}
	exp.Arguments = p.parseExpressionList(token.RPAREN)
	return exp
}

// parseExpressionList is the shared helper behind call arguments and array literals: a
// possibly-empty, comma-separated run of expressions terminated by `end`.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseArrayLiteral parses `[elem, elem, ...]` using the shared expression-list helper.
func (p *Parser) parseArrayLiteral() ast.Expression {
	array := &ast.ArrayLiteral{Token: p.currentToken}
	array.Elements = p.parseExpressionList(token.RBRACKET)
	return array
}

// parseIndexExpression is registered as the infix handler for '[': the already-parsed
// `left` becomes the thing being indexed, and the index expression is parsed at LOWEST
// before the closing ']' is demanded.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.currentToken, Left: left}

	p.nextToken()
	exp.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return exp
}

// parseHashLiteral parses `{key: value, key: value, ...}`. Duplicate keys are permitted;
// every key is its own AST node, so Pairs and Order keep one entry per key as written in
// the source. It is the evaluator that hashes the evaluated keys, and there the last
// value for an equal key wins.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.currentToken}
	hash.Pairs = make(map[ast.Expression]ast.Expression)
	hash.Order = []ast.Expression{}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(token.COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs[key] = value
		hash.Order = append(hash.Order, key)

		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	return hash
}
