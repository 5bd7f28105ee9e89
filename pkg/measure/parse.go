package measure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// ErrSyntax is wrapped by every error returned while parsing an expression.
var ErrSyntax = errors.New("invalid measure expression")

// Parse evaluates a length expression such as "5*mm", "2.5cm" or
// "(63.5 - 2) * mm". Numbers, unit names, + - * / and parentheses are
// allowed. A number without unit is taken as millimetres.
func Parse(expr string) (float64, error) {
	p := newParser(expr)
	v, err := p.expr()
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrSyntax, expr, err)
	}
	if err := p.end(); err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrSyntax, expr, err)
	}
	return v, nil
}

// ParseSize evaluates a size expression: either a name from NamedSizes
// ("A4", "STANDARD") or a pair of length expressions "(63.5*mm, 88*mm)".
func ParseSize(expr string) (Size, error) {
	name := strings.TrimSpace(expr)
	if size, ok := NamedSizes[name]; ok {
		return size, nil
	}

	p := newParser(expr)
	size, err := p.pair()
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return Size{}, fmt.Errorf("%w %q: %v", ErrSyntax, expr, err)
	}
	return size, nil
}

type parser struct {
	s    scanner.Scanner
	tok  rune
	errs []string
}

func newParser(expr string) *parser {
	p := &parser{}
	p.s.Init(strings.NewReader(expr))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		p.errs = append(p.errs, msg)
	}
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) scanErr() error {
	if len(p.errs) > 0 {
		return errors.New(p.errs[0])
	}
	return nil
}

func (p *parser) expect(r rune) error {
	if err := p.scanErr(); err != nil {
		return err
	}
	if p.tok != r {
		return fmt.Errorf("expected %q, found %q", r, p.s.TokenText())
	}
	p.next()
	return nil
}

func (p *parser) end() error {
	if err := p.scanErr(); err != nil {
		return err
	}
	if p.tok != scanner.EOF {
		return fmt.Errorf("unexpected %q", p.s.TokenText())
	}
	return nil
}

func (p *parser) pair() (Size, error) {
	if err := p.expect('('); err != nil {
		return Size{}, err
	}
	w, err := p.expr()
	if err != nil {
		return Size{}, err
	}
	if err := p.expect(','); err != nil {
		return Size{}, err
	}
	h, err := p.expr()
	if err != nil {
		return Size{}, err
	}
	if err := p.expect(')'); err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= rhs
			continue
		}
		if rhs == 0 {
			return 0, errors.New("division by zero")
		}
		v /= rhs
	}
	return v, nil
}

func (p *parser) unary() (float64, error) {
	if p.tok == '-' {
		p.next()
		v, err := p.factor()
		return -v, err
	}
	return p.factor()
}

func (p *parser) factor() (float64, error) {
	if err := p.scanErr(); err != nil {
		return 0, err
	}

	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.s.TokenText(), 64)
		if err != nil {
			return 0, err
		}
		p.next()
		// "3mm" scans as a number directly followed by a unit name.
		if p.tok == scanner.Ident {
			unit, ok := Units[p.s.TokenText()]
			if !ok {
				return 0, fmt.Errorf("unknown unit %q", p.s.TokenText())
			}
			p.next()
			v *= unit
		}
		return v, nil

	case scanner.Ident:
		name := p.s.TokenText()
		unit, ok := Units[name]
		if !ok {
			if _, isSize := NamedSizes[name]; isSize {
				return 0, fmt.Errorf("%q is a size, not a length", name)
			}
			return 0, fmt.Errorf("unknown name %q", name)
		}
		p.next()
		return unit, nil

	case '(':
		p.next()
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(')'); err != nil {
			return 0, err
		}
		return v, nil

	case scanner.EOF:
		return 0, errors.New("unexpected end of expression")
	}

	return 0, fmt.Errorf("unexpected %q", p.s.TokenText())
}
