package menu

// Dish is one entry in the static dish catalog. Nutrition values are per one
// standard serving ("1 plate"); Keywords are English labels an external
// recognizer is likely to emit for this dish.
type Dish struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	BaseCalories float64  `json:"base_calories"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Carbs        float64  `json:"carbs"`
	Keywords     []string `json:"keywords"`
}

// dishes is the single source of truth for per-serving nutrition. Values are
// approximations from Thai nutrition references, rounded. Keywords may repeat
// across dishes; the matcher resolves the ambiguity by score.
var dishes = []Dish{
	{
		ID:           "krapao_chicken_rice",
		DisplayName:  "ข้าวราดผัดกระเพราไก่",
		BaseCalories: 430,
		Protein:      20,
		Fat:          12,
		Carbs:        55,
		Keywords: []string{
			"basil chicken with rice",
			"thai basil chicken",
			"stir fried chicken with basil",
			"chicken holy basil",
			"pad kra pao chicken",
			"pad krapow chicken",
			"stir fried minced chicken basil",
		},
	},
	{
		ID:           "krapao_pork_rice",
		DisplayName:  "ข้าวราดผัดกระเพราหมู",
		BaseCalories: 370,
		Protein:      14,
		Fat:          9,
		Carbs:        59,
		Keywords: []string{
			"basil pork with rice",
			"thai basil pork",
			"stir fried pork with basil",
			"minced pork basil",
			"ground pork holy basil",
			"pad kra pao pork",
			"pad krapow pork",
		},
	},
	{
		ID:           "fried_rice_pork",
		DisplayName:  "ข้าวผัดหมู",
		BaseCalories: 630,
		Protein:      55,
		Fat:          37,
		Carbs:        15,
		Keywords: []string{
			"pork fried rice",
			"fried rice with pork",
			"thai fried rice pork",
			"fried rice minced pork",
			"fried rice sliced pork",
		},
	},
	{
		ID:           "fried_rice_chicken",
		DisplayName:  "ข้าวผัดไก่",
		BaseCalories: 645,
		Protein:      10,
		Fat:          28,
		Carbs:        87,
		Keywords: []string{
			"chicken fried rice",
			"fried rice with chicken",
			"thai fried rice chicken",
			"stir fried rice chicken",
		},
	},
	{
		ID:           "tom_yum_goong",
		DisplayName:  "ต้มยำกุ้ง",
		BaseCalories: 150,
		Protein:      12,
		Fat:          5,
		Carbs:        10,
		Keywords: []string{
			"tom yum goong",
			"tom yum kung",
			"tom yum soup shrimp",
			"spicy shrimp soup",
			"thai tom yum shrimp",
		},
	},
	{
		ID:           "som_tum",
		DisplayName:  "ส้มตำ",
		BaseCalories: 120,
		Protein:      3,
		Fat:          2,
		Carbs:        25,
		Keywords: []string{
			"som tum",
			"thai papaya salad",
			"spicy papaya salad",
			"green papaya salad",
			"thai som tum",
		},
	},
	{
		ID:           "pad_thai",
		DisplayName:  "ผัดไทย",
		BaseCalories: 400,
		Protein:      15,
		Fat:          18,
		Carbs:        50,
		Keywords: []string{
			"pad thai",
			"thai pad thai",
			"stir fried thai noodles",
			"thai stir fried noodles",
			"pad thai noodles",
		},
	},
	{
		ID:           "green_curry_chicken",
		DisplayName:  "แกงเขียวหวานไก่",
		BaseCalories: 500,
		Protein:      25,
		Fat:          22,
		Carbs:        55,
		Keywords: []string{
			"green curry chicken",
			"thai green curry",
			"green curry with chicken",
			"thai green curry chicken",
			"green curry chicken rice",
		},
	},
	{
		ID:           "massaman_curry_beef",
		DisplayName:  "มัสมั่นเนื้อ",
		BaseCalories: 600,
		Protein:      30,
		Fat:          25,
		Carbs:        65,
		Keywords: []string{
			"massaman curry beef",
			"thai massaman curry",
			"massaman curry with beef",
			"thai massaman curry beef",
			"massaman beef curry rice",
		},
	},
	{
		ID:           "khao_soi_chicken",
		DisplayName:  "ข้าวซอยไก่",
		BaseCalories: 550,
		Protein:      20,
		Fat:          30,
		Carbs:        50,
		Keywords: []string{
			"khao soi chicken",
			"thai khao soi",
			"khao soi with chicken",
			"thai khao soi chicken",
			"northern thai curry noodle soup",
		},
	},
	{
		ID:           "pad_krapow_moo_kai_dao",
		DisplayName:  "ผัดกะเพราหมูไข่ดาว",
		BaseCalories: 500,
		Protein:      18,
		Fat:          20,
		Carbs:        55,
		Keywords: []string{
			"pad krapow moo kai dao",
			"stir fried basil pork with fried egg",
			"basil pork with fried egg",
			"thai basil pork fried egg",
			"krapow pork fried egg",
		},
	},
	{
		ID:           "moo_ping",
		DisplayName:  "หมูปิ้ง",
		BaseCalories: 150,
		Protein:      10,
		Fat:          8,
		Carbs:        12,
		Keywords: []string{
			"moo ping",
			"thai grilled pork skewers",
			"grilled pork skewers",
			"thai pork skewers",
			"bbq pork skewers",
		},
	},
	{
		ID:           "larb_moo",
		DisplayName:  "ลาบหมู",
		BaseCalories: 250,
		Protein:      15,
		Fat:          15,
		Carbs:        10,
		Keywords: []string{
			"larb moo",
			"thai minced pork salad",
			"spicy minced pork salad",
			"thai larb pork",
			"larb pork salad",
		},
	},
	{
		ID:           "gaeng_daeng_chicken",
		DisplayName:  "แกงแดงไก่",
		BaseCalories: 520,
		Protein:      24,
		Fat:          21,
		Carbs:        28,
		Keywords: []string{
			"red curry chicken",
			"thai red curry",
			"red curry with chicken",
			"thai red curry chicken",
			"red curry chicken rice",
		},
	},
	{
		ID:           "pad_se_eiw",
		DisplayName:  "ผัดซีอิ๊ว",
		BaseCalories: 450,
		Protein:      18,
		Fat:          16,
		Carbs:        60,
		Keywords: []string{
			"pad see ew",
			"thai pad see ew",
			"stir fried soy sauce noodles",
			"thai stir fried soy sauce noodles",
			"pad si ew",
		},
	},
}

// Dishes returns the full catalog. Callers must not mutate the returned
// slice; the catalog is defined once at startup and never changes.
func Dishes() []Dish {
	return dishes
}

// Lookup returns the catalog entry with the given id.
func Lookup(id string) (Dish, bool) {
	for _, d := range dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}
