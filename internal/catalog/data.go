package catalog

var countries = map[string]CountryEntry{
	"TH": {
		Code:        "TH",
		Name:        "🇹🇭 Thailand",
		Currency:    "THB",
		Price:       350,
		ShippingFee: 50,
		PhonePrefix: "+66",
		DirectOrder: true,
		Agents:      []Agent{},
		BankDetails: []BankDetail{
			{Provider: "Kasikorn Bank", AccountName: "Ms. Veena Maneesilawong", AccountNumber: "1413720792"},
		},
	},
	"US": {
		Code:     "US",
		Name:     "🇺🇸 United States",
		Currency: "USD",
		Price:    15,
		Agents: []Agent{
			{Name: "Moe Yu Spring Revolution Market", Location: "US West Coast", Link: "https://www.m.me/MYSRevoM"},
			{Name: "Helping Hands for Burma - H2B", Location: "United States", Link: "https://www.m.me/H2BNYC"},
		},
	},
	"UK": {
		Code:     "UK",
		Name:     "🇬🇧 United Kingdom",
		Currency: "GBP",
		Price:    15,
		Agents: []Agent{
			{Name: "Myanmar Accountancy Club UK", Link: "https://www.m.me/MAClubUK"},
		},
	},
	"FR": {
		Code:     "FR",
		Name:     "🇫🇷 France",
		Currency: "EUR",
		Price:    15,
		Agents: []Agent{
			{Name: "Doh Atu - Ensemble pour le Myanmar", Link: "https://www.facebook.com/profile.php?id=100089067352038"},
		},
	},
	"AU": {
		Code:     "AU",
		Name:     "🇦🇺 Australia",
		Currency: "AUD",
		Price:    25,
		Agents: []Agent{
			{Name: "Ma Mon Zin", Location: "Sydney", Link: "https://www.m.me/MonMZin"},
			{Name: "BPLA Support Group - Perth", Location: "Perth", Link: "https://www.facebook.com/profile.php?id=61576540951374"},
		},
	},
	"SG": {
		Code:     "SG",
		Name:     "🇸🇬 Singapore",
		Currency: "SGD",
		Price:    20,
		Agents: []Agent{
			{Name: "ရေချမ်းစင် (SG)", Link: "https://www.facebook.com/profile.php?id=100075701121183"},
		},
	},
	"KR": {
		Code:     "KR",
		Name:     "🇰🇷 Korea",
		Currency: "KRW",
		Price:    25000,
		Agents: []Agent{
			{Name: "Ma Yin Moe Maung", Link: "https://www.m.me/moemaung.yin"},
		},
	},
	"JP": {
		Code:     "JP",
		Name:     "🇯🇵 Japan",
		Currency: "JPY",
		Price:    2500,
		Agents: []Agent{
			{Name: "BPLA Supply Force.JP", Link: "https://www.m.me/bplasupplyforcejp"},
			{Name: "LOVE FOR MYANMAR.JP", Link: "https://www.m.me/loveformyanmarjp"},
		},
	},
	"NO": {
		Code:     "NO",
		Name:     "🇳🇴 Norway",
		Currency: "NOK",
		Price:    200,
		Agents: []Agent{
			{Name: "Myanmar- CRPH Support Group, Norway", Link: "https://www.m.me/crphsupportgroupnorway"},
		},
	},
	"NZ": {
		Code:     "NZ",
		Name:     "🇳🇿 New Zealand",
		Currency: "NZD",
		Price:    25,
		Agents: []Agent{
			{Name: "Nway Oo Bazaar", Link: "https://www.m.me/nwayoobazaar"},
		},
	},
	"IE": {
		Code:     "IE",
		Name:     "🇮🇪 Ireland",
		Currency: "EUR",
		Price:    15,
		Agents: []Agent{
			{Name: "CRPH Funding Ireland", Link: "https://www.m.me/crphfundingireland"},
		},
	},
	"TW": {
		Code:     "TW",
		Name:     "🇹🇼 Taiwan",
		Currency: "TWD",
		Price:    500,
		Agents: []Agent{
			{Name: "台灣聲援緬甸聯盟 Taiwan Alliance for Myanmar", Link: "https://www.m.me/TaiwanAllianceforMyanmar"},
		},
	},
	"MY": {
		Code:     "MY",
		Name:     "🇲🇾 Malaysia",
		Currency: "MYR",
		Price:    50,
		Agents: []Agent{
			{Name: "Hmine Myo Sat Vocalist", Link: "https://www.m.me/hmine.myo.sat.vocalist"},
		},
	},
}

var book = BookInfo{
	Title:       "Beyond The Trenches",
	Author:      "Maung SaungKha",
	Publisher:   "Doh Atu Publishing",
	Synopsis:    "စစ်ဖြစ်နေတဲ့တိုင်းပြည်မှာ ခေတ်ရဲ့ လိုအပ်ချက်အရ ကလောင်ကို ဘေးခဏချပြီး စစ်ထွက်ရတဲ့ ကဗျာဆရာမောင်ဆောင်းခဟာ ယနေ့ခေတ်လူငယ်များစွာရဲ့ ခေတ်ပြိုင်ပုံရိပ်တွေထဲက ကောက်ကြောင်းတခုပါပဲ။ ငြိမ်းချမ်းတဲ့တနေ့ အညာဒေသက ထန်းတောတွေကြားမှာ ကဗျာတွေ ပြန်ရွတ်ဆိုနိုင်မယ့်နေ့ရက်တွေကို မျှော်ရည်ရင်း သူ့ရဲ့ ကဗျာစုစည်းမှု \"ကတုတ်ကျင်းများအလွန်\" မှာ ပါဝင်စီးမျောလိုက်ကြရအောင်...",
	CoverImage:  "https://lh3.googleusercontent.com/d/1CknfO6HcATeTKOPqruqYTpQ31tMjKbeN",
	StockStatus: "In Stock",
}
