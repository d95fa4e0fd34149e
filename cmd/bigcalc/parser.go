package main

import (
	"fmt"

	"github.com/halvard/bignum"
)

// parser implements the recursive-descent grammar of spec §6.2:
//
//	expr   = sum EOL | END
//	sum    = term  ( ('+' | '-') term )*
//	term   = factor ( ('*' | '/') factor )*
//	factor = '-' factor | '(' sum ')' | NUMBER
type parser struct {
	lx  *lexer
	cur token
}

func newParser(lx *lexer) (*parser, error) {
	p := &parser{lx: lx}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseLine parses a full line as `sum EOL`, rejecting trailing garbage.
func (p *parser) parseLine() (bignum.Int, error) {
	v, err := p.parseSum()
	if err != nil {
		return bignum.Int{}, err
	}
	if p.cur.kind != tokEOL {
		return bignum.Int{}, fmt.Errorf("bigcalc: trailing garbage after expression")
	}
	return v, nil
}

func (p *parser) parseSum() (bignum.Int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return bignum.Int{}, err
	}

	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return bignum.Int{}, err
		}
		if op == tokPlus {
			v = v.Add(rhs)
		} else {
			v = v.Sub(rhs)
		}
	}

	return v, nil
}

func (p *parser) parseTerm() (bignum.Int, error) {
	v, err := p.parseFactor()
	if err != nil {
		return bignum.Int{}, err
	}

	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return bignum.Int{}, err
		}
		if op == tokStar {
			v = v.Mul(rhs)
		} else {
			q, err := v.Div(rhs)
			if err != nil {
				return bignum.Int{}, err
			}
			v = q
		}
	}

	return v, nil
}

func (p *parser) parseFactor() (bignum.Int, error) {
	switch p.cur.kind {
	case tokMinus:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		v, err := p.parseFactor()
		if err != nil {
			return bignum.Int{}, err
		}
		return v.Neg(), nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		v, err := p.parseSum()
		if err != nil {
			return bignum.Int{}, err
		}
		if p.cur.kind != tokRParen {
			return bignum.Int{}, fmt.Errorf("bigcalc: unmatched parenthesis")
		}
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return v, nil

	case tokNumber:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return bignum.FromDecimal(text)

	default:
		return bignum.Int{}, fmt.Errorf("bigcalc: expected a number, '-', or '(' ")
	}
}
