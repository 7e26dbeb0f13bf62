package sources

func init() {
	register("superseis", NewSuperseis)
}

// NewSuperseis crawls the Superseis online catalog.
func NewSuperseis(opts Options) Source {
	return &catalogSource{
		name:    "superseis",
		landing: "https://www.superseis.com.py/",
		sel: selectors{
			Item:  "div.product-item",
			Title: "h2.product-title a",
			Price: []string{
				"span.price-label-sales",
				"span.price-label",
				"div.product-price",
			},
		},
		client:     opts.Client,
		classifier: opts.Classifier,
	}
}
