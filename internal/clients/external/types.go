package external

// SpellData represents spell information from the dnd5e API
type SpellData struct {
	ID            string
	Name          string
	Level         int
	School        string
	Ritual        bool
	Concentration bool

	// AreaType is the area of effect shape as the API names it
	// ("sphere", "cone", ...), empty for targeted spells
	AreaType string
	AreaSize int

	// DamageType is the API damage type name, empty for spells dealing none
	DamageType  string
	SavingThrow string
	Classes     []string
}
