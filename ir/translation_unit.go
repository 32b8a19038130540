package ir

// TranslationUnit is the result of reading one abi-instr document: the
// source path it was compiled from, an optional target address size, its
// global scope, and the interned locations referenced anywhere within it.
type TranslationUnit struct {
	path           string
	addressSize    int
	hasAddressSize bool
	global         *GlobalScope
	Locations      *LocationManager
}

// NewTranslationUnit returns an empty translation unit with a fresh
// global scope and location manager.
func NewTranslationUnit() *TranslationUnit {
	return &TranslationUnit{
		global:    NewGlobalScope(),
		Locations: NewLocationManager(),
	}
}

func (tu *TranslationUnit) Path() string     { return tu.path }
func (tu *TranslationUnit) SetPath(p string) { tu.path = p }

// AddressSize returns the target address size in bytes and whether the
// source document specified one at all.
func (tu *TranslationUnit) AddressSize() (int, bool) { return tu.addressSize, tu.hasAddressSize }

func (tu *TranslationUnit) SetAddressSize(n int) {
	tu.addressSize = n
	tu.hasAddressSize = true
}

// GlobalScope returns the translation unit's top-level scope.
func (tu *TranslationUnit) GlobalScope() *GlobalScope { return tu.global }

// Corpus is an ordered collection of translation units read from a
// single abi-corpus document (or a ZIP archive of abi-instr
// documents).
type Corpus struct {
	path  string
	units []*TranslationUnit
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

func (c *Corpus) Path() string     { return c.path }
func (c *Corpus) SetPath(p string) { c.path = p }

// TranslationUnits returns the corpus's translation units in the order
// they were read.
func (c *Corpus) TranslationUnits() []*TranslationUnit { return c.units }

// AddTranslationUnit appends tu to the corpus.
func (c *Corpus) AddTranslationUnit(tu *TranslationUnit) {
	c.units = append(c.units, tu)
}
