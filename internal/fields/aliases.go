package fields

// Semantic names one of the fixed rate-table fields a column can bind to.
type Semantic string

const (
	CEPStart  Semantic = "cep_start"
	CEPEnd    Semantic = "cep_end"
	WeightMin Semantic = "weight_min"
	WeightMax Semantic = "weight_max"
	Price     Semantic = "price"
	LeadTime  Semantic = "lead_time"
)

// Semantics lists the vocabulary in detection order.
var Semantics = []Semantic{CEPStart, CEPEnd, WeightMin, WeightMax, Price, LeadTime}

// fieldAliases maps each semantic field to the normalized header spellings
// observed across carrier exports (Portuguese, English and Spanish variants,
// plus the usual abbreviations). Read-only after init.
var fieldAliases = map[Semantic][]string{
	CEPStart: {
		"cep_inicio", "cep_inicial", "cep_de", "cep_start", "cep_origem",
		"faixa_inicio", "faixa_inicial", "inicio", "de", "from", "start",
		"zip_from", "zip_start", "postal_from", "cp_desde", "desde",
	},
	CEPEnd: {
		"cep_fim", "cep_final", "cep_ate", "cep_end", "cep_destino",
		"faixa_fim", "faixa_final", "fim", "ate", "to", "end",
		"zip_to", "zip_end", "postal_to", "cp_hasta", "hasta",
	},
	WeightMin: {
		"peso_min", "peso_minimo", "peso_inicial", "peso_de",
		"weight_min", "min_weight", "weight_from", "peso_desde",
	},
	WeightMax: {
		"peso_max", "peso_maximo", "peso_final", "peso_ate",
		"weight_max", "max_weight", "weight_to", "peso_hasta",
	},
	Price: {
		"valor", "valor_frete", "preco", "preco_frete", "frete", "custo",
		"tarifa", "vlr", "vlr_frete", "price", "cost", "amount", "rate",
		"precio", "importe",
	},
	LeadTime: {
		"prazo", "prazo_dias", "prazo_entrega", "dias", "dias_entrega",
		"lead_time", "delivery_days", "delivery_time", "days", "entrega",
		"plazo", "transit_time",
	},
}

// postalRangeTerms flags headers that look like postal-range columns even
// when no alias matches ("faixa1", "cep1", "zipstart"...). Used only by the
// positional fallback.
var postalRangeTerms = []string{"cep", "faixa", "zip", "postal", "cp"}
