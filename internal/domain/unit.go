package domain

// Unit is an entry of the facility's unit catalog (a block or department
// deliveries can be addressed to). The catalog is reference data seeded by
// migration; sessions store the Label.
type Unit struct {
	ID    int
	Label string
}
