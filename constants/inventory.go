package constants

// Unit is the measurement unit for an inventory quantity.
type Unit string

const (
	UnitPiece Unit = "szt"
	UnitKg    Unit = "kg"
	UnitGram  Unit = "g"
	UnitLiter Unit = "l"
	UnitMl    Unit = "ml"
	UnitPack  Unit = "opak"
)

// Units holds the allowed unit values for inventory items.
var Units = []Unit{UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl, UnitPack}

// StorageLocation tells where an inventory item is kept.
type StorageLocation string

const (
	StorageFridge  StorageLocation = "fridge"
	StorageFreezer StorageLocation = "freezer"
	StoragePantry  StorageLocation = "pantry"
	StorageCabinet StorageLocation = "cabinet"
	StorageOther   StorageLocation = "other"
)

// StorageLocations holds the allowed storage location values.
var StorageLocations = []StorageLocation{
	StorageFridge, StorageFreezer, StoragePantry, StorageCabinet, StorageOther,
}

// UnitStrings returns the unit values as plain strings for schema validation.
func UnitStrings() []string {
	out := make([]string, len(Units))
	for i, u := range Units {
		out[i] = string(u)
	}
	return out
}

// StorageStrings returns the storage locations as plain strings for schema validation.
func StorageStrings() []string {
	out := make([]string, len(StorageLocations))
	for i, s := range StorageLocations {
		out[i] = string(s)
	}
	return out
}
