package ast

import "cinder/internal/source"

// ItemKind discriminates top-level (and module-level) items.
type ItemKind uint8

const (
	ItemMod ItemKind = iota + 1
	ItemFn
	ItemStruct
	ItemEnum
	ItemTrait
	ItemImpl
	ItemForeignMod
	ItemMacroDef
)

func (k ItemKind) String() string {
	switch k {
	case ItemMod:
		return "mod"
	case ItemFn:
		return "fn"
	case ItemStruct:
		return "struct"
	case ItemEnum:
		return "enum"
	case ItemTrait:
		return "trait"
	case ItemImpl:
		return "impl"
	case ItemForeignMod:
		return "foreign mod"
	case ItemMacroDef:
		return "macro"
	}
	return "unknown"
}

// Item is a declaration. Exactly one payload field matching Kind is set.
type Item struct {
	ID       NodeID
	Kind     ItemKind
	Name     Ident
	Attrs    []Attr
	Generics *Generics
	Span     source.Span

	Mod          *Mod           // ItemMod
	Fn           *Fn            // ItemFn
	Struct       *StructDef     // ItemStruct
	Enum         *EnumDef       // ItemEnum
	Trait        *Trait         // ItemTrait
	Impl         *Impl          // ItemImpl
	ForeignItems []*ForeignItem // ItemForeignMod
	MacroDef     *MacroDef      // ItemMacroDef
}

// Fn is a function definition: signature plus optional body (bodies may be
// elided by earlier phases, e.g. for documentation-only runs).
type Fn struct {
	Sig  *FnSig
	Body *Block
}

// FnSig is a function signature.
type FnSig struct {
	Params []*Param
	Ret    *Ty
	Span   source.Span
}

// Param is a single function parameter.
type Param struct {
	ID    NodeID
	Attrs []Attr
	Pat   *Pat
	Ty    *Ty
	Span  source.Span
}

// StructDef is the field list of a struct or of an enum variant.
// Its ID identifies the implicit constructor.
type StructDef struct {
	ID     NodeID
	Fields []*Field
	Span   source.Span
}

// Field is a single struct (or variant) field.
type Field struct {
	ID    NodeID
	Attrs []Attr
	Name  Ident
	Ty    *Ty
	Span  source.Span
}

// EnumDef is the variant list of an enum.
type EnumDef struct {
	Variants []*Variant
	Span     source.Span
}

// Variant is a single enum variant.
type Variant struct {
	ID    NodeID
	Attrs []Attr
	Name  Ident
	Data  *StructDef
	Span  source.Span
}

// Trait is a trait declaration body.
type Trait struct {
	Items []*AssocItem
}

// Impl is an implementation block.
type Impl struct {
	SelfTy   *Ty
	TraitRef *Path // nil for inherent impls
	Items    []*AssocItem
}

// AssocItemKind discriminates trait/impl member items.
type AssocItemKind uint8

const (
	AssocFn AssocItemKind = iota + 1
	AssocConst
	AssocType
)

// AssocItem is a trait or impl member. Which of the two it is follows from
// the enclosing item's kind.
type AssocItem struct {
	ID    NodeID
	Kind  AssocItemKind
	Name  Ident
	Attrs []Attr
	Fn    *Fn // AssocFn
	Ty    *Ty // AssocConst (type), AssocType (aliased type; may be nil in traits)
	Span  source.Span
}

// ForeignItem is a declaration inside a foreign ("extern") module.
type ForeignItem struct {
	ID    NodeID
	Name  Ident
	Attrs []Attr
	Sig   *FnSig
	Span  source.Span
}

// MacroDef is a macro definition; its body is kept as raw text since this
// tree is never expanded here.
type MacroDef struct {
	ID   NodeID
	Body string
	Span source.Span
}

// MacCall is an unexpanded macro invocation.
type MacCall struct {
	Path *Path
	Span source.Span
}

// Generics is a generic parameter list.
type Generics struct {
	Params []*GenericParam
	Span   source.Span
}

// GenericParamKind discriminates generic parameters.
type GenericParamKind uint8

const (
	GenericType GenericParamKind = iota + 1
	GenericLifetime
	GenericConst
)

// GenericParam is a single generic parameter.
type GenericParam struct {
	ID   NodeID
	Kind GenericParamKind
	Name Ident
	Span source.Span
}
