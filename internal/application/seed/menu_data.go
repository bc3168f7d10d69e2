package seed

// Datos iniciales del menú de la cafetería. Precios en la unidad monetaria
// local (sin decimales).

type menuCategory struct {
	Name         string
	DisplayOrder int
}

type menuOption struct {
	Code         string
	NameEn       string
	NameAr       string
	Price        int64
	DisplayOrder int
}

type menuPrice struct {
	Size   string
	Amount int64
}

type menuProduct struct {
	Code         string
	NameEn       string
	NameAr       string
	Category     string
	Caffeine     int
	Customizable bool
	Tags         []string
	Flavors      []string
	Prices       []menuPrice
}

var menuCategories = []menuCategory{
	{"Iced Coffee", 1},
	{"Iced Tea", 2},
	{"Ice-Espresso", 3},
	{"Frappuccino", 4},
	{"Energy Drinks", 5},
	{"Yogurt & Essence", 6},
	{"Milkshakes", 7},
	{"Protein Shakes", 8},
	{"Smoothies", 9},
	{"Fresh Juices", 10},
	{"Hot Coffee", 11},
	{"Specialty", 12},
	{"Tea", 13},
}

var menuOptions = []menuOption{
	{"extra_syrup", "Extra Syrup", "سيروب إضافي", 1000, 1},
	{"almond_milk", "Almond Milk", "حليب اللوز", 1000, 2},
	{"skimmed_milk", "Skimmed Milk", "حليب خالي الدسم", 1000, 3},
	{"extra_espresso", "Extra Espresso Shot", "شوت إسبريسو إضافي", 1000, 4},
	{"add_cream", "Add Cream", "إضافة كريمة", 1000, 5},
}

var menuProducts = []menuProduct{
	// Iced Coffee
	{"iced_mocha", "Iced Mocha", "آيس موكا", "Iced Coffee", 5, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4500}, {"large", 6000}}},
	{"cookies_iced_latte", "Cookies Iced Latte", "كوكيز آيس لاتيه", "Iced Coffee", 4, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}, {"large", 5500}}},
	{"iced_latte", "Iced Latte", "آيس لاتيه", "Iced Coffee", 4, true, []string{"Cold"}, nil, []menuPrice{{"medium", 3000}, {"large", 4000}}},
	{"iced_coffee", "Iced Coffee", "آيس كوفي", "Iced Coffee", 5, true, []string{"Cold"}, nil, []menuPrice{{"medium", 3000}, {"large", 4000}}},
	{"iced_spanish_latte", "Iced Spanish Latte", "آيس سبانيش لاتيه", "Iced Coffee", 4, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}, {"large", 5000}}},
	{"iced_berry_latte", "Iced Berry Latte", "آيس بيري لاتيه", "Iced Coffee", 4, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}, {"large", 5000}}},
	{"chocolate_iced_latte", "Chocolate Iced Latte", "جوكلت آيس لاتيه", "Iced Coffee", 4, true, []string{"Cold"}, nil, []menuPrice{{"large", 5000}}},
	{"flavoured_iced_latte", "Flavoured Iced Latte", "آيس لاتيه بنكهات", "Iced Coffee", 4, true, []string{"Cold"}, []string{"Hazelnut", "Caramel", "Vanilla", "Coconut"}, []menuPrice{{"medium", 4000}, {"large", 5500}}},
	{"iced_cappuccino", "Iced Cappuccino", "آيس كابتشينو", "Iced Coffee", 5, true, []string{"Cold"}, nil, []menuPrice{{"large", 5000}}},
	{"banana_cinnamon", "Banana Cinnamon", "بنانا سينابون", "Iced Coffee", 3, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}}},

	// Iced Tea
	{"iced_tea", "Iced Tea", "آيس تي", "Iced Tea", 2, false, []string{"Cold"}, nil, []menuPrice{{"medium", 3000}}},
	{"hibiscus_iced_tea", "Hibiscus Iced Tea", "آيس تي كوجرات", "Iced Tea", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 3000}}},
	{"iced_tea_flavors", "Iced Tea Flavors", "آيس تي بنكهات", "Iced Tea", 2, false, []string{"Cold"}, []string{"Mango", "Peach", "Strawberry"}, []menuPrice{{"medium", 4000}}},

	// Ice-Espresso
	{"ice_espresso_plain", "Ice-Espresso (Plain)", "آيس-بريسو (سادة)", "Ice-Espresso", 6, true, []string{"Cold"}, nil, []menuPrice{{"medium", 3500}}},
	{"ice_espresso_flavors", "Ice-Espresso Flavors", "آيس-بريسو بنكهات", "Ice-Espresso", 6, true, []string{"Cold"}, []string{"Hazelnut", "Berry", "Vanilla", "Caramel", "Cookies"}, []menuPrice{{"medium", 4500}}},
	{"ice_espresso_coconut", "Ice-Espresso (Coconut)", "آيس-بريسو (جوز الهند)", "Ice-Espresso", 6, true, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}}},

	// Frappuccino
	{"frappuccino", "Frappuccino", "فرابتشينو", "Frappuccino", 4, true, []string{"Cold"}, []string{"Vanilla", "Coconut", "Hazelnut", "Caramel"}, []menuPrice{{"medium", 5000}}},

	// Energy Drinks
	{"mexican_energy", "Mexican Energy", "مكسيكي", "Energy Drinks", 7, false, []string{"Cold"}, nil, []menuPrice{{"medium", 3000}}},
	{"cold_lava", "Cold Lava", "كولد لافا", "Energy Drinks", 7, false, []string{"Cold"}, nil, []menuPrice{{"medium", 4500}}},
	{"purple_haze", "Purple Haze", "بيربل هيز", "Energy Drinks", 7, false, []string{"Cold"}, nil, []menuPrice{{"medium", 6000}}},

	// Yogurt & Essence
	{"bloody_dairy", "Bloody Dairy", "بلودي ديري", "Yogurt & Essence", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 7000}}},
	{"berry_essence", "Berry Essence", "جوهر التوت", "Yogurt & Essence", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 7000}}},
	{"joy", "Joy", "سعادة", "Yogurt & Essence", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 7000}}},

	// Milkshakes
	{"brownies_shake", "Brownies Shake", "براونيز", "Milkshakes", 0, true, []string{"Cold"}, nil, []menuPrice{{"without_cream", 4000}, {"with_cream", 5000}}},
	{"strawberry_ice_cream", "Strawberry Ice Cream Shake", "ستروبيري آيس كريم", "Milkshakes", 0, true, []string{"Cold"}, nil, []menuPrice{{"without_cream", 4000}, {"with_cream", 5000}}},
	{"pistachio_biscuits", "Pistachio Biscuits Shake", "فستق بسكويت", "Milkshakes", 0, true, []string{"Cold"}, nil, []menuPrice{{"without_cream", 5000}, {"with_cream", 6000}}},
	{"oreo_kinder_lotus", "Oreo/Kinder/Lotus Shake", "أوريو/كيندر/لوتس", "Milkshakes", 0, true, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}, {"large", 5500}, {"medium_with_cream", 5000}, {"large_with_cream", 6500}}},

	// Protein Shakes
	{"protein_shake_banana_strawberry", "Protein Shake (Banana & Strawberry)", "بروتين شيك (موز وفراولة)", "Protein Shakes", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}}},
	{"protein_shake_chocolate", "Protein Shake (Chocolate)", "بروتين شيك (شوكولاتة)", "Protein Shakes", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}}},

	// Smoothies
	{"smoothie_strawberry", "Strawberry Smoothie", "سموذي فراولة", "Smoothies", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}, {"large", 6500}}},
	{"smoothie_mango", "Mango Smoothie", "سموذي مانجو", "Smoothies", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}, {"large", 6500}}},
	{"smoothie_red_mango", "Red Mango Smoothie", "سموذي ريد مانجو", "Smoothies", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}, {"large", 6500}}},
	{"smoothie_pomegranate", "Pomegranate Smoothie", "سموذي رمان", "Smoothies", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}, {"large", 6500}}},

	// Fresh Juices
	{"fresh_orange_juice", "Fresh Orange Juice", "عصير برتقال طازج", "Fresh Juices", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 4500}}},
	{"fresh_lemon_juice", "Fresh Lemon Juice", "عصير ليمون طازج", "Fresh Juices", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 4000}}},
	{"fresh_banana_juice", "Fresh Banana Juice", "عصير موز طازج", "Fresh Juices", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 4500}}},
	{"fresh_manda_juice", "Fresh Manda Juice", "عصير ماندا طازج", "Fresh Juices", 0, false, []string{"Cold"}, nil, []menuPrice{{"medium", 5000}}},

	// Hot Coffee
	{"espresso_single", "Espresso (Single)", "إسبريسو (واحد)", "Hot Coffee", 6, false, []string{"Hot"}, nil, []menuPrice{{"small", 2000}}},
	{"espresso_double", "Espresso (Double)", "إسبريسو (دبل)", "Hot Coffee", 7, false, []string{"Hot"}, nil, []menuPrice{{"small", 3000}}},
	{"espresso_triple", "Espresso (Triple)", "إسبريسو (تربل)", "Hot Coffee", 7, false, []string{"Hot"}, nil, []menuPrice{{"small", 4000}}},
	{"joco_black", "Joco Black Coffee", "جوكو بلاك", "Hot Coffee", 5, false, []string{"Hot"}, nil, []menuPrice{{"small", 2500}, {"medium", 3500}, {"large", 4500}}},
	{"chocolate_coffee", "Chocolate Coffee", "قهوة شوكولاتة", "Hot Coffee", 4, false, []string{"Hot"}, nil, []menuPrice{{"small", 2500}, {"medium", 3500}, {"large", 4500}}},
	{"turkish_coffee", "Turkish Coffee", "قهوة تركية", "Hot Coffee", 5, false, []string{"Hot"}, nil, []menuPrice{{"small", 2000}, {"medium", 3000}, {"large", 4000}}},
	{"cappuccino", "Cappuccino", "كابتشينو", "Hot Coffee", 5, true, []string{"Hot"}, nil, []menuPrice{{"medium", 3000}, {"large", 4000}}},
	{"nescafe", "Nescafe", "نسكافيه", "Hot Coffee", 3, true, []string{"Hot"}, nil, []menuPrice{{"medium", 3000}, {"large", 4000}}},
	{"spanish_latte_hot", "Spanish Latte (Hot)", "سبانيش لاتيه (ساخن)", "Hot Coffee", 4, true, []string{"Hot"}, nil, []menuPrice{{"medium", 4000}, {"large", 5000}}},
	{"berry_latte_hot", "Berry Latte (Hot)", "لاتيه توت (ساخن)", "Hot Coffee", 4, true, []string{"Hot"}, nil, []menuPrice{{"medium", 4000}, {"large", 5000}}},
	{"flavoured_latte_hot", "Flavoured Latte (Hot)", "لاتيه بنكهات (ساخن)", "Hot Coffee", 4, true, []string{"Hot"}, []string{"Hazelnut", "Caramel", "Vanilla", "Coconut"}, []menuPrice{{"medium", 4000}, {"large", 5500}}},

	// Specialty
	{"kathban", "Kathban", "كثبان", "Specialty", 6, false, []string{"Hot"}, nil, []menuPrice{{"medium", 8000}}},
	{"sun_ice", "Sun Ice", "ثلج الشمس", "Specialty", 4, false, []string{"Hot"}, nil, []menuPrice{{"medium", 5000}}},

	// Tea
	{"iraqi_tea", "Iraqi Tea", "شاي عراقي", "Tea", 2, false, []string{"Hot"}, nil, []menuPrice{{"small", 1000}}},
	{"cinnamon_tea", "Cinnamon Tea", "شاي قرفة", "Tea", 1, false, []string{"Hot"}, nil, []menuPrice{{"small", 1000}}},
	{"mint_tea", "Mint Tea", "شاي نعناع", "Tea", 0, false, []string{"Hot"}, nil, []menuPrice{{"small", 1500}}},
	{"hibiscus_tea", "Hibiscus Tea", "شاي كوجرات", "Tea", 0, false, []string{"Hot"}, nil, []menuPrice{{"small", 1500}}},
	{"milk_tea", "Milk Tea", "شاي بالحليب", "Tea", 2, false, []string{"Hot"}, nil, []menuPrice{{"small", 2000}}},
}
