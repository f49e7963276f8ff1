package types

// Source identifies the exchange an announcement was fetched from.
type Source string

const (
	SourceSGX   Source = "SGX"
	SourceBursa Source = "Bursa"
)

// Announcement is a single disclosure entry from an exchange listing page.
// Date is kept in the exchange's native free-form format.
type Announcement struct {
	Source Source
	Title  string
	Link   string
	Date   string
}

// Record is one entry in the output report. Struct field order here is the
// field order in the serialized JSON.
type Record struct {
	Date     string   `json:"date"`
	Source   Source   `json:"source"`
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	File     string   `json:"file"`
	KeyLines []string `json:"key_lines"`
}
