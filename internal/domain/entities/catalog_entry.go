package entities

// CatalogEntry maps a (tipificacion, actividad) pair to a business-day lead time.
//
// Read-only reference data: the service never writes the catalog, it only
// resolves lead times from it at activity creation.
type CatalogEntry struct {
	Tipificacion string `json:"tipificacion"`
	Actividad    string `json:"actividad"`
	DiasHabiles  int    `json:"diasHabiles"`
}
