package derive

import "optionalstruct-generator/internal/schema"

// fieldVisitor is run once per surviving field, in declaration order.
// base is the field on the stripped base schema, partial its counterpart
// on the derived schema. Visitors may rewrite the partial field; they
// must treat the base field as read-only.
type fieldVisitor interface {
	Visit(global *GlobalOptions, base, partial *schema.FieldDescriptor, opts *FieldOptions)
}
