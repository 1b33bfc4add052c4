package catalog

import "github.com/bilmem-net/ai-hediye/internal/wizard"

// Seed returns a fresh copy of the curated Turkish-market catalog.
func Seed() []Product {
	const (
		anne      = wizard.RecipientMother
		baba      = wizard.RecipientFather
		arkadas   = wizard.RecipientFriend
		kardes    = wizard.RecipientSibling
		sevgili   = wizard.RecipientPartner
		isArkadas = wizard.RecipientColleague
	)
	return []Product{
		{
			ID:          "dp-tech-1",
			Title:       "JBL Tune 520BT Kablosuz Kulaklık",
			Description: "57 saate kadar pil ömrü ve Pure Bass sesiyle müzik tutkunları için mükemmel bir hediye.",
			ImageURL:    "https://m.media-amazon.com/images/I/41Kstf68cvL._AC_SL1000_.jpg",
			Price:       1590,
			BuyURL:      "https://www.amazon.com.tr/dp/B0BYP6SK2B",
			Categories:  []string{"teknoloji", "muzik"},
			Tags:        []string{"müzik", "genç", "ofis", "kulaklık", "bluetooth"},
			Suitability: Suitability{Recipients: []wizard.Recipient{arkadas, kardes, sevgili, isArkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-tech-2",
			Title:       "Xiaomi Mi Smart Band 8 Aktif",
			Description: "Geniş ekranı ve 50'den fazla spor moduyla sağlıklı yaşamı takip etmek isteyenler için.",
			ImageURL:    "https://m.media-amazon.com/images/I/51p6PclvQ9L._AC_SL1200_.jpg",
			Price:       999,
			BuyURL:      "https://www.amazon.com.tr/dp/B0CJX9S1CH",
			Categories:  []string{"teknoloji", "spor"},
			Tags:        []string{"sağlık", "fitness", "saat", "akıllı bileklik"},
			Suitability: Suitability{Recipients: []wizard.Recipient{anne, baba, arkadas, sevgili, isArkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-gaming-1",
			Title:       "SteelSeries Rival 3 Oyuncu Mouse",
			Description: "RGB aydınlatmalı ve yüksek hassasiyetli sensörüyle oyun tutkunlarının performansı artacak.",
			ImageURL:    "https://m.media-amazon.com/images/I/61K7602I9ML._AC_SL1500_.jpg",
			Price:       1350,
			BuyURL:      "https://www.amazon.com.tr/dp/B08176SM7C",
			Categories:  []string{"oyun", "teknoloji"},
			Tags:        []string{"gamer", "gaming", "oyuncu", "bilgisayar"},
			Suitability: Suitability{Recipients: []wizard.Recipient{arkadas, kardes, sevgili}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-home-1",
			Title:       "Cosori Lite 3.8L Akıllı Air Fryer",
			Description: "Sağlıklı ve pratik yemekler için modern mutfakların vazgeçilmez yardımcısı.",
			ImageURL:    "https://m.media-amazon.com/images/I/61NqK+qEqkL._AC_SL1500_.jpg",
			Price:       3899,
			BuyURL:      "https://www.amazon.com.tr/dp/B0B76LHL9T",
			Categories:  []string{"yemek", "ev"},
			Tags:        []string{"mutfak", "aşçı", "yemek yapma", "airfryer"},
			Suitability: Suitability{Recipients: []wizard.Recipient{anne, sevgili, baba}, MinCloseness: wizard.ClosenessClose},
		},
		{
			ID:          "dp-home-2",
			Title:       "English Home Pure Cotton Nevresim Seti",
			Description: "Yüzde yüz pamuk dokusuyla kaliteli uyku ve şık bir yatak odası dekorasyonu.",
			ImageURL:    "https://m.media-amazon.com/images/I/81P8c1r95OL._AC_SL1500_.jpg",
			Price:       649,
			BuyURL:      "https://www.amazon.com.tr/dp/B0CFV8LRS3",
			Categories:  []string{"ev", "moda"},
			Tags:        []string{"dekorasyon", "konfor", "yatak odası"},
			Suitability: Suitability{Recipients: []wizard.Recipient{anne, sevgili}, MinCloseness: wizard.ClosenessClose},
		},
		{
			ID:          "dp-food-1",
			Title:       "Kütahya Porselen 24 Parça Yemek Takımı",
			Description: "Zarif tasarımıyla sofralara şıklık katacak, uzun ömürlü porselen seti.",
			ImageURL:    "https://m.media-amazon.com/images/I/61eG8+p8HmL._AC_SL1200_.jpg",
			Price:       2850,
			BuyURL:      "https://www.amazon.com.tr/dp/B09D8N7Z9S",
			Categories:  []string{"yemek", "ev"},
			Tags:        []string{"mutfak", "sofra", "porselen"},
			Suitability: Suitability{
				Recipients:   []wizard.Recipient{anne, sevgili},
				MinCloseness: wizard.ClosenessClose,
				Occasions:    []wizard.Occasion{wizard.OccasionNewYear, wizard.OccasionBirthday},
			},
		},
		{
			ID:          "dp-beauty-1",
			Title:       "L'Occitane Shea Butter El Kremi Seti",
			Description: "Cildi şımartan, ikonik kokusuyla bilinen lüks nemlendirici bakım paketi.",
			ImageURL:    "https://m.media-amazon.com/images/I/61H4hO-eDGL._AC_SL1100_.jpg",
			Price:       950,
			BuyURL:      "https://www.trendyol.com/loccitane/shea-butter-el-kremi-p-3243122",
			Categories:  []string{"guzellik"},
			Tags:        []string{"bakım", "spa", "cilt bakımı", "kozmetik"},
			Suitability: Suitability{Recipients: []wizard.Recipient{anne, arkadas, sevgili, isArkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-beauty-2",
			Title:       "Braun Silk-épil 9 Epilatör Seti",
			Description: "Kişisel bakımda profesyonel sonuçlar arayanlar için kapsamlı set.",
			ImageURL:    "https://m.media-amazon.com/images/I/71X8k-N35pL._AC_SL1500_.jpg",
			Price:       4200,
			BuyURL:      "https://www.amazon.com.tr/dp/B07BHLCS75",
			Categories:  []string{"guzellik", "teknoloji"},
			Tags:        []string{"bakım", "kişisel bakım", "kadın"},
			Suitability: Suitability{Recipients: []wizard.Recipient{sevgili, anne}, MinCloseness: wizard.ClosenessClose},
		},
		{
			ID:          "dp-fashion-1",
			Title:       "Pierre Cardin Deri Cüzdan & Kemer Seti",
			Description: "Şıklığından ödün vermeyen erkekler için klasikten vazgeçmeyen aksesuar seti.",
			ImageURL:    "https://m.media-amazon.com/images/I/61lB9y6548L._AC_SL1000_.jpg",
			Price:       1650,
			BuyURL:      "https://www.amazon.com.tr/dp/B08XMW1XWR",
			Categories:  []string{"moda"},
			Tags:        []string{"aksesuar", "şık", "ofis", "erkek", "cüzdan"},
			Suitability: Suitability{Recipients: []wizard.Recipient{baba, sevgili, isArkadas, arkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-book-1",
			Title:       "Kindle Paperwhite (16 GB)",
			Description: "Her ortamda binlerce kitap okuma özgürlüğü sunan en popüler e-kitap okuyucu.",
			ImageURL:    "https://m.media-amazon.com/images/I/51f4zWvEw7L._AC_SL1000_.jpg",
			Price:       6800,
			BuyURL:      "https://www.amazon.com.tr/dp/B09TMCYWHY",
			Categories:  []string{"kitap", "teknoloji"},
			Tags:        []string{"okuma", "huzur", "e-kitap", "yazar"},
			Suitability: Suitability{Recipients: []wizard.Recipient{arkadas, sevgili, anne, baba, isArkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-art-1",
			Title:       "Faber-Castell 36 Renk Metal Kutu Boya Seti",
			Description: "Yaratıcılığını konuşturmak isteyen sanatseverler için kaliteli boya koleksiyonu.",
			ImageURL:    "https://m.media-amazon.com/images/I/81xU+7V-B+L._AC_SL1500_.jpg",
			Price:       850,
			BuyURL:      "https://www.amazon.com.tr/dp/B0007OEDRE",
			Categories:  []string{"sanat", "hobi"},
			Tags:        []string{"resim", "çizim", "boyama", "yaratıcı"},
			Suitability: Suitability{Recipients: []wizard.Recipient{kardes, arkadas, sevgili}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-travel-1",
			Title:       "Stanley Classic Vacuum Trigger-Action Termos",
			Description: "Kamp, seyahat veya ofis için içecekleri saatlerce ideal sıcaklıkta tutar.",
			ImageURL:    "https://m.media-amazon.com/images/I/51KxGvHlshL._AC_SL1500_.jpg",
			Price:       1450,
			BuyURL:      "https://www.amazon.com.tr/dp/B07P9H4BGH",
			Categories:  []string{"seyahat", "bahce", "spor"},
			Tags:        []string{"kamp", " outdoor", "doğa", "kahve"},
			Suitability: Suitability{Recipients: []wizard.Recipient{baba, arkadas, sevgili, isArkadas}, MinCloseness: wizard.ClosenessNormal},
		},
		{
			ID:          "dp-garden-1",
			Title:       "Bosch EasyPrune Akülü Bahçe Makası",
			Description: "Bahçeyle uğraşmayı sevenler için işleri kolaylaştıran teknolojik yardımcı.",
			ImageURL:    "https://m.media-amazon.com/images/I/71KxN0L8P2L._AC_SL1500_.jpg",
			Price:       3200,
			BuyURL:      "https://www.amazon.com.tr/dp/B077S6ZPHW",
			Categories:  []string{"bahce", "teknoloji"},
			Tags:        []string{"doğa", "çiçek", "bahçe işleri"},
			Suitability: Suitability{Recipients: []wizard.Recipient{anne, baba}, MinCloseness: wizard.ClosenessClose},
		},
	}
}
