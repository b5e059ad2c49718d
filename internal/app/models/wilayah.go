package models

// Provinsi mirrors a province from the wilayah.id dataset. The ID is the
// numeric province code assigned by the dataset, not a generated serial.
type Provinsi struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Kota mirrors a regency/city from the wilayah.id dataset. Codes are
// dotted strings such as "11.01", so the key is textual.
type Kota struct {
	ID         string `json:"id"`
	ProvinsiID int64  `json:"provinsi_id"`
	Name       string `json:"name"`
}
