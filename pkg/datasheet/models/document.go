package models

// TableBlock is one category table on a product page.
type TableBlock struct {
	// Title is the category name shown in the colored title row.
	Title string `json:"title"`
	// Header is the parameter-name row, rendered bold.
	Header []string `json:"header"`
	// Layout holds the content rows and how they are laid out.
	Layout LayoutDecision `json:"layout"`
}

// Columns returns the column count of the block.
func (b TableBlock) Columns() int { return len(b.Header) }

// ProductPage is one product's rendered unit.
type ProductPage struct {
	// Name is the product name.
	Name string `json:"name"`
	// Banner is the heading printed above the tables, e.g. "Preliminary Data Sheet".
	Banner string `json:"banner"`
	// Tables holds one block per category with data for this product.
	Tables []TableBlock `json:"tables"`
}

// Boilerplate is the fixed text and artwork attached to every page.
type Boilerplate struct {
	// Logo is a path to the logo image (optional).
	Logo string `json:"logo,omitempty"`
	// Disclaimer is the legal footer text.
	Disclaimer string `json:"disclaimer"`
}

// Document is the deliverable of one PDF job.
type Document struct {
	// Name is the job's output name, without extension.
	Name string `json:"name"`
	// Title is the document title.
	Title string `json:"title"`
	// Author is the document author.
	Author string `json:"author"`
	// Index lists the product names on the contents page, in page order.
	Index []string `json:"index"`
	// Pages holds one page per product.
	Pages []ProductPage `json:"pages"`
	// Boilerplate is attached to every product page.
	Boilerplate Boilerplate `json:"boilerplate"`
}
