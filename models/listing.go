package models

// Listing is one row of the Grailed search-results feed. Fields keep the
// raw strings shown on the page; correspondence between fields relies on
// shared DOM order within the feed.
type Listing struct {
	PostedTime  string `json:"Posted Time" yaml:"Posted Time"`
	Title       string `json:"Title" yaml:"Title"`
	Designer    string `json:"Designer" yaml:"Designer"`
	Size        string `json:"Size" yaml:"Size"`
	Price       string `json:"Price" yaml:"Price"`
	ListingLink string `json:"Listing Link" yaml:"Listing Link"`
}

// Columns returns the output column names in their fixed order.
func Columns() []string {
	return []string{"Posted Time", "Title", "Designer", "Size", "Price", "Listing Link"}
}

// Row returns the listing's fields in the same order as Columns.
func (l Listing) Row() []string {
	return []string{l.PostedTime, l.Title, l.Designer, l.Size, l.Price, l.ListingLink}
}
