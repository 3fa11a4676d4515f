package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo rep everything is seeded under. Matches the account the portal's
// mock login hands out so both login paths land on the same data.
const (
	seedRepID    = "123"
	seedRepEmail = "test@crm.com"
	seedRepName  = "Test Satış Temsilcisi"
	seedTenantID = "6855a4bed102a469d3598524"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample CRM data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"activities", "sales_orders", "sales_targets", "customers", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedRepUser(db)
		seedCustomers(db)
		seedOrders(db)
		seedActivities(db)
		seedTargets(db)

		fmt.Println("CRM sample data seeded successfully")
	},
}

func seedRepUser(db *gorm.DB) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("test123"), bcrypt.DefaultCost)

	var exists int
	if err := db.Raw("SELECT 1 FROM users WHERE email = ?", seedRepEmail).Row().Scan(&exists); err == nil {
		fmt.Println("rep user already exists:", seedRepEmail)
		return
	}

	if err := db.Exec(
		"INSERT INTO users (id, name, email, role, tenant_id, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, 'sales-representative', ?, ?, true, now(), now())",
		seedRepID, seedRepName, seedRepEmail, seedTenantID, string(hash),
	).Error; err != nil {
		log.Fatalf("failed to insert rep user: %v", err)
	}
	fmt.Println("Seeded rep user:", seedRepEmail)
}

func seedCustomers(db *gorm.DB) {
	customers := []struct {
		ID, Name, Email, Phone, Company, Address, City string
		TotalOrders                                    int
		TotalRevenue                                   int64
		LastOrderDate                                  string
		Status                                         string
		AssignedDate                                   string
	}{
		{"1", "Ahmet Yılmaz", "ahmet@example.com", "+90 532 123 4567", "ABC Teknoloji", "Atatürk Cad. No:123", "İstanbul", 15, 45000, "2024-01-20", "active", "2023-06-15"},
		{"2", "Fatma Demir", "fatma@example.com", "+90 533 987 6543", "XYZ Ltd.", "İnönü Sok. No:45", "Ankara", 8, 22000, "2024-01-18", "active", "2023-08-20"},
		{"3", "Mehmet Kaya", "mehmet@example.com", "+90 534 555 1234", "Kaya İnşaat", "Cumhuriyet Mah.", "İzmir", 3, 8500, "2024-01-10", "potential", "2023-12-01"},
		{"4", "Ayşe Özkan", "ayse@example.com", "+90 535 777 8888", "Özkan Ticaret", "Barbaros Bulvarı", "İstanbul", 0, 0, "", "inactive", "2023-11-15"},
	}

	for _, c := range customers {
		var exists int
		if err := db.Raw("SELECT 1 FROM customers WHERE id = ?", c.ID).Row().Scan(&exists); err == nil {
			continue
		}

		var lastOrder interface{}
		if c.LastOrderDate != "" {
			lastOrder = c.LastOrderDate
		}
		if err := db.Exec(
			"INSERT INTO customers (id, rep_id, name, email, phone, company, address, city, total_orders, total_revenue, last_order_date, status, assigned_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())",
			c.ID, seedRepID, c.Name, c.Email, c.Phone, c.Company, c.Address, c.City, c.TotalOrders, c.TotalRevenue, lastOrder, c.Status, c.AssignedDate,
		).Error; err != nil {
			log.Fatalf("failed to insert customer %s: %v", c.Name, err)
		}
		fmt.Printf("Seeded customer: %s\n", c.Name)
	}
}

func seedOrders(db *gorm.DB) {
	orders := []struct {
		ID, OrderNumber, CustomerID, CustomerName, CustomerEmail string
		TotalAmount                                              int64
		Status, OrderDate, ExpectedDelivery, ActualDelivery      string
		ItemCount                                                int
		Notes                                                    string
	}{
		{"1", "SO-2024-001", "1", "Ahmet Yılmaz", "ahmet@example.com", 15000, "delivered", "2024-01-15", "2024-01-20", "2024-01-19", 5, "Hızlı teslimat istendi"},
		{"2", "SO-2024-002", "2", "Fatma Demir", "fatma@example.com", 8500, "shipped", "2024-01-18", "2024-01-25", "", 3, "Özel ambalaj"},
		{"3", "SO-2024-003", "3", "Mehmet Kaya", "mehmet@example.com", 22000, "processing", "2024-01-20", "2024-01-27", "", 8, ""},
		{"4", "SO-2024-004", "4", "Ayşe Özkan", "ayse@example.com", 5500, "confirmed", "2024-01-22", "2024-01-29", "", 2, ""},
		{"5", "SO-2024-005", "1", "Ali Veli", "ali@example.com", 12000, "pending", "2024-01-23", "2024-01-30", "", 4, "Müşteri onayı bekleniyor"},
	}

	for _, o := range orders {
		var exists int
		if err := db.Raw("SELECT 1 FROM sales_orders WHERE order_number = ?", o.OrderNumber).Row().Scan(&exists); err == nil {
			continue
		}

		var actual, notes interface{}
		if o.ActualDelivery != "" {
			actual = o.ActualDelivery
		}
		if o.Notes != "" {
			notes = o.Notes
		}
		if err := db.Exec(
			"INSERT INTO sales_orders (id, rep_id, order_number, customer_id, customer_name, customer_email, total_amount, status, order_date, expected_delivery_date, actual_delivery_date, item_count, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())",
			o.ID, seedRepID, o.OrderNumber, o.CustomerID, o.CustomerName, o.CustomerEmail, o.TotalAmount, o.Status, o.OrderDate, o.ExpectedDelivery, actual, o.ItemCount, notes,
		).Error; err != nil {
			log.Fatalf("failed to insert order %s: %v", o.OrderNumber, err)
		}
		fmt.Printf("Seeded order: %s\n", o.OrderNumber)
	}
}

func seedActivities(db *gorm.DB) {
	activities := []struct {
		ID, Type, Title, Description, CustomerID, CustomerName string
		Status, Priority, ScheduledDate, CompletedDate         string
		Duration                                               int
		Outcome, Notes                                         string
	}{
		{"1", "call", "Ürün Tanıtım Görüşmesi", "Yeni ürün serisini tanıtmak için arama", "1", "Ahmet Yılmaz", "completed", "high", "2024-01-24T10:00:00Z", "2024-01-24T10:15:00Z", 15, "Müşteri ürünlerle ilgilendi, teklif hazırlanacak", "Fiyat konusunda hassas, indirim bekliyor"},
		{"2", "meeting", "Sözleşme Görüşmesi", "Yıllık sözleşme detaylarını görüşmek", "2", "Fatma Demir", "scheduled", "high", "2024-01-25T14:00:00Z", "", 0, "", ""},
		{"3", "email", "Teklif Gönderimi", "Talep edilen ürünler için teklif maili", "3", "Mehmet Kaya", "completed", "medium", "2024-01-23T16:00:00Z", "2024-01-23T16:30:00Z", 0, "Teklif gönderildi, müşteri değerlendiriyor", ""},
		{"4", "visit", "Sahada Ziyaret", "Müşteri lokasyonunda ürün demosu", "4", "Ayşe Özkan", "in-progress", "medium", "2024-01-24T13:00:00Z", "", 120, "", ""},
		{"5", "task", "Müşteri Dosyası Güncelleme", "Müşteri bilgilerini güncellemek", "1", "Ali Veli", "scheduled", "low", "2024-01-25T09:00:00Z", "", 0, "", ""},
		{"6", "note", "Müşteri Geri Bildirimi", "Satış sonrası müşteri memnuniyeti notu", "2", "Zeynep Ak", "completed", "low", "2024-01-22T17:00:00Z", "2024-01-22T17:10:00Z", 0, "Müşteri memnun, referans verebileceğini belirtti", ""},
	}

	for _, a := range activities {
		var exists int
		if err := db.Raw("SELECT 1 FROM activities WHERE id = ?", a.ID).Row().Scan(&exists); err == nil {
			continue
		}

		var completed, duration, outcome, notes interface{}
		if a.CompletedDate != "" {
			completed = a.CompletedDate
		}
		if a.Duration > 0 {
			duration = a.Duration
		}
		if a.Outcome != "" {
			outcome = a.Outcome
		}
		if a.Notes != "" {
			notes = a.Notes
		}
		if err := db.Exec(
			"INSERT INTO activities (id, rep_id, type, title, description, customer_id, customer_name, status, priority, scheduled_date, completed_date, duration, outcome, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())",
			a.ID, seedRepID, a.Type, a.Title, a.Description, a.CustomerID, a.CustomerName, a.Status, a.Priority, a.ScheduledDate, completed, duration, outcome, notes,
		).Error; err != nil {
			log.Fatalf("failed to insert activity %s: %v", a.Title, err)
		}
		fmt.Printf("Seeded activity: %s\n", a.Title)
	}
}

func seedTargets(db *gorm.DB) {
	targets := []struct {
		ID, Title, Description, TargetType string
		TargetValue, CurrentValue          int64
		Period, StartDate, EndDate         string
		Status, Priority, CreatedBy        string
		Notes                              string
	}{
		{"1", "Ocak Ayı Satış Hedefi", "Bu ay içerisinde 50.000 TL gelir elde etmek", "revenue", 50000, 35000, "monthly", "2024-01-01", "2024-01-31", "active", "high", "Satış Müdürü", "Yeni müşteri kazanımına odaklan"},
		{"2", "Yeni Müşteri Kazanımı", "Bu ay 10 yeni müşteri kazanmak", "customers", 10, 7, "monthly", "2024-01-01", "2024-01-31", "active", "medium", "Satış Müdürü", ""},
		{"3", "Haftalık Sipariş Hedefi", "Bu hafta 5 sipariş almak", "orders", 5, 3, "weekly", "2024-01-22", "2024-01-28", "active", "medium", "Satış Müdürü", ""},
		{"4", "Aralık Ayı Hedefi", "Geçen ay 40.000 TL gelir hedefi", "revenue", 40000, 42000, "monthly", "2023-12-01", "2023-12-31", "completed", "high", "Satış Müdürü", "Hedef aşıldı! Tebrikler!"},
		{"5", "Günlük Arama Hedefi", "Her gün en az 10 müşteri araması", "calls", 10, 8, "daily", "2024-01-24", "2024-01-24", "active", "low", "Satış Müdürü", ""},
	}

	for _, t := range targets {
		var exists int
		if err := db.Raw("SELECT 1 FROM sales_targets WHERE id = ?", t.ID).Row().Scan(&exists); err == nil {
			continue
		}

		var notes interface{}
		if t.Notes != "" {
			notes = t.Notes
		}
		if err := db.Exec(
			"INSERT INTO sales_targets (id, rep_id, title, description, target_type, target_value, current_value, period, start_date, end_date, status, priority, created_by, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())",
			t.ID, seedRepID, t.Title, t.Description, t.TargetType, t.TargetValue, t.CurrentValue, t.Period, t.StartDate, t.EndDate, t.Status, t.Priority, t.CreatedBy, notes,
		).Error; err != nil {
			log.Fatalf("failed to insert target %s: %v", t.Title, err)
		}
		fmt.Printf("Seeded target: %s\n", t.Title)
	}
}
