package sources

func init() {
	register("stock", NewStock)
}

// NewStock crawls the Stock online catalog. Stock runs the same storefront
// platform as Superseis with slightly different markup.
func NewStock(opts Options) Source {
	return &catalogSource{
		name:    "stock",
		landing: "https://www.stock.com.py/",
		sel: selectors{
			Item:  "div.product-item",
			Title: "h2.product-title a",
			Price: []string{
				"span.price-label-sales",
				"span.price-label",
				"div.product-price span",
			},
		},
		client:     opts.Client,
		classifier: opts.Classifier,
	}
}
