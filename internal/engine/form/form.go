// Released under an MIT license. See LICENSE.

// Package form enumerates the roots special forms.
package form

// Kind identifies a special form.
type Kind int

// Special forms. None is not a special form.
const (
	None Kind = iota

	Add
	Atom
	Car
	Cdr
	Cond
	Cons
	Defun
	Eq
	Label
	Lt
	Quote
	Sub
)

// Lambda is the atom that heads a lambda expression. It is not a special
// form: a lambda expression is only meaningful in the head of an application.
const Lambda = "lambda"

//nolint:gochecknoglobals
var names = [...]string{
	None:  "",
	Add:   "add",
	Atom:  "atom",
	Car:   "car",
	Cdr:   "cdr",
	Cond:  "cond",
	Cons:  "cons",
	Defun: "defun",
	Eq:    "eq",
	Label: "label",
	Lt:    "lt",
	Quote: "quote",
	Sub:   "sub",
}

// Lookup returns the special form named s, or None.
func Lookup(s string) Kind {
	switch s {
	case "add":
		return Add
	case "atom":
		return Atom
	case "car":
		return Car
	case "cdr":
		return Cdr
	case "cond":
		return Cond
	case "cons":
		return Cons
	case "defun":
		return Defun
	case "eq":
		return Eq
	case "label":
		return Label
	case "lt":
		return Lt
	case "quote":
		return Quote
	case "sub":
		return Sub
	}

	return None
}

// Names returns the names of all special forms.
func Names() []string {
	return append([]string(nil), names[Add:]...)
}

// String returns the name of the special form k.
func (k Kind) String() string {
	if k < None || int(k) >= len(names) {
		return "form(?)"
	}

	return names[k]
}
