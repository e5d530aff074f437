package property

// Op names a statement the repo issues against the store. It labels metrics and
// wraps store errors.
type Op string

const (
	OpList   Op = "list_properties"
	OpCreate Op = "create_property"
	OpDelete Op = "delete_property"
	OpUpdate Op = "update_property"
	OpGet    Op = "get_property"
)

func (o Op) String() string {
	return string(o)
}
