package preciossuperpy

// DefaultRuleset is the built-in classification table for Paraguayan
// supermarket listings. Category order encodes priority; do not reorder.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Exclusions: []string{
			"shampoo", "acondicionador", "desodorante", "jabon", "jabón",
			"dentifrico", "dentífrico", "pañales", "lavandina", "detergente",
			"suavizante", "insecticida", "maquillaje", "perfume", "talco",
			"repelente", "toallitas",
		},
		Categories: []Category{
			{
				Name: "Carnicería",
				Include: []string{
					"carne", "pechuga", "pollo", "cerdo", "costilla",
					"milanesa", "chorizo", "bife", "asado", "puchero",
					"carnaza", "suprema", "molida", "costeleta",
				},
				Exclude: []string{"caldo", "sabor"},
				Subgroups: []SubgroupRule{
					{Pattern: "pollo", Label: "Pollo"},
					{Pattern: "pechuga", Label: "Pollo"},
					{Pattern: "suprema", Label: "Pollo"},
					{Pattern: "cerdo", Label: "Cerdo"},
					{Pattern: "chorizo", Label: "Embutidos"},
					{Pattern: "", Label: "Vacuno"},
				},
			},
			{
				Name: "Lácteos",
				Include: []string{
					"leche", "queso", "yogur", "yogurt", "manteca",
					"crema", "ricota",
				},
				Exclude: []string{"facial", "corporal"},
				Subgroups: []SubgroupRule{
					{Pattern: "queso", Label: "Quesos"},
					{Pattern: "yogur", Label: "Yogures"},
					{Pattern: "yogurt", Label: "Yogures"},
					{Pattern: "leche", Label: "Leches"},
					{Pattern: "", Label: "Otros"},
				},
			},
			{
				Name: "Frutas y Verduras",
				Include: []string{
					"manzana", "banana", "naranja", "limon", "limón",
					"frutilla", "pera", "piña", "sandia", "sandía", "melon",
					"melón", "papa", "cebolla", "tomate", "zanahoria",
					"lechuga", "zapallo", "locote", "mandioca", "remolacha",
					"repollo",
				},
				Exclude: []string{"fritas", "snack"},
				Subgroups: []SubgroupRule{
					{Pattern: "manzana", Label: "Frutas"},
					{Pattern: "banana", Label: "Frutas"},
					{Pattern: "naranja", Label: "Frutas"},
					{Pattern: "limon", Label: "Frutas"},
					{Pattern: "frutilla", Label: "Frutas"},
					{Pattern: "pera", Label: "Frutas"},
					{Pattern: "piña", Label: "Frutas"},
					{Pattern: "sandia", Label: "Frutas"},
					{Pattern: "melon", Label: "Frutas"},
					{Pattern: "", Label: "Verduras"},
				},
			},
			{
				Name: "Panadería",
				Include: []string{
					"pan", "panes", "galleta", "galletita", "galletitas",
					"bizcocho", "factura", "tostada",
				},
				Exclude: []string{"rallado"},
				Subgroups: []SubgroupRule{
					{Pattern: "galleta", Label: "Galletitas"},
					{Pattern: "galletita", Label: "Galletitas"},
					{Pattern: "galletitas", Label: "Galletitas"},
					{Pattern: "", Label: "Panificados"},
				},
			},
			{
				Name: "Bebidas",
				Include: []string{
					"gaseosa", "jugo", "agua", "cerveza", "vino", "soda",
					"energizante", "refresco",
				},
				Subgroups: []SubgroupRule{
					{Pattern: "cerveza", Label: "Alcohólicas"},
					{Pattern: "vino", Label: "Alcohólicas"},
					{Pattern: "gaseosa", Label: "Gaseosas"},
					{Pattern: "jugo", Label: "Jugos"},
					{Pattern: "agua", Label: "Aguas"},
					{Pattern: "", Label: "Otros"},
				},
			},
			{
				Name: "Almacén",
				Include: []string{
					"arroz", "fideo", "fideos", "harina", "azucar", "azúcar",
					"aceite", "yerba", "sal", "vinagre", "poroto", "lenteja",
					"atun", "atún", "conserva", "mermelada", "huevo", "huevos",
				},
				Subgroups: []SubgroupRule{
					{Pattern: "", Label: "Despensa"},
				},
			},
		},
	}
}
