package measure

// Page sizes.
var (
	A1          = Size{594 * MM, 841 * MM}
	A2          = Size{420 * MM, 594 * MM}
	A3          = Size{297 * MM, 420 * MM}
	A4          = Size{210 * MM, 297 * MM}
	A5          = Size{148 * MM, 210 * MM}
	Letter      = Size{8.5 * Inch, 11 * Inch}
	HalfLetter  = Size{5.5 * Inch, 8.5 * Inch}
	Legal       = Size{8.5 * Inch, 14 * Inch}
	JuniorLegal = Size{5 * Inch, 8 * Inch}
	Tabloid     = Size{11 * Inch, 17 * Inch}
)

// Card sizes, with a well known game using each.
var (
	MiniUSA      = Size{41 * MM, 63 * MM}   // Eldritch Horror
	MiniChimera  = Size{43 * MM, 65 * MM}   // Arkham Horror
	MiniEuro     = Size{45 * MM, 68 * MM}   // Viticulture
	StandardUSA  = Size{56 * MM, 87 * MM}   // Munchkin
	Chimera      = Size{57.5 * MM, 89 * MM} // Fantasy Flight games
	Euro         = Size{59 * MM, 92 * MM}   // Dominion
	Standard     = Size{63.5 * MM, 88 * MM} // Magic
	MagnumCopper = Size{65 * MM, 100 * MM}  // 7 Wonders
	MagnumSpace  = Size{61 * MM, 103 * MM}  // Space Alert
	SmallSquare  = Size{70 * MM, 70 * MM}   // Alta Tension
	Square       = Size{80 * MM, 80 * MM}   // Jungle Speed
	MagnumSilver = Size{70 * MM, 110 * MM}  // Scythe Encounters
	MagnumGold   = Size{80 * MM, 120 * MM}  // Dixit
	Tarot        = Size{70 * MM, 120 * MM}
)

// NamedSizes maps the names accepted in definition files to sizes.
var NamedSizes = map[string]Size{
	"A1":           A1,
	"A2":           A2,
	"A3":           A3,
	"A4":           A4,
	"A5":           A5,
	"LETTER":       Letter,
	"HALF_LETTER":  HalfLetter,
	"LEGAL":        Legal,
	"JUNIOR_LEGAL": JuniorLegal,
	"TABLOID":      Tabloid,

	"MINI_USA":      MiniUSA,
	"MINI_CHIMERA":  MiniChimera,
	"MINI_EURO":     MiniEuro,
	"STANDARD_USA":  StandardUSA,
	"CHIMERA":       Chimera,
	"EURO":          Euro,
	"STANDARD":      Standard,
	"MAGNUM_COPPER": MagnumCopper,
	"MAGNUM_SPACE":  MagnumSpace,
	"SMALL_SQUARE":  SmallSquare,
	"SQUARE":        Square,
	"MAGNUM_SILVER": MagnumSilver,
	"MAGNUM_GOLD":   MagnumGold,
	"TAROT":         Tarot,
}

// Units maps unit names to their length in millimetres.
var Units = map[string]float64{
	"mm":   MM,
	"cm":   CM,
	"in":   Inch,
	"inch": Inch,
	"pt":   PT,
}
