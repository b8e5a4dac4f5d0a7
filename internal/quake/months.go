package quake

// MonthNames lists the full English month names in calendar order, spelled
// the way PHIVOLCS embeds them in its monthly bulletin URLs.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
