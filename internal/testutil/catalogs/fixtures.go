package catalogs

// Fixture represents a predefined catalog for testing.
type Fixture interface {
	// Name returns the fixture's descriptive name.
	Name() string

	// Categories returns the category records in document order.
	Categories() []CategorySpec
}

type fixture struct {
	name       string
	categories []CategorySpec
}

func (f *fixture) Name() string               { return f.name }
func (f *fixture) Categories() []CategorySpec { return f.categories }

// Predefined fixtures for common test scenarios.
var (
	// FixtureElectronics has two categories with three and one products.
	FixtureElectronics Fixture = &fixture{
		name: "Electronics",
		categories: []CategorySpec{
			{
				Name:        "Смартфоны",
				Description: "Смартфоны, как средство не только коммуникации",
				Products: []ProductSpec{
					Product("Samsung Galaxy C23 Ultra", "256GB, Серый цвет, 200MP камера", 180000.0, 5),
					Product("Iphone 15", "512GB, Gray space", 210000.0, 8),
					Product("Xiaomi Redmi Note 11", "1024GB, Синий", 31000.0, 14),
				},
			},
			{
				Name:        "Телевизоры",
				Description: "Современный телевизор, который позволяет наслаждаться просмотром",
				Products: []ProductSpec{
					Product(`55" QLED 4K`, "Фоновая подсветка", 123000.0, 7),
				},
			},
		},
	}

	// FixtureDuplicates has products whose names differ only in case.
	FixtureDuplicates Fixture = &fixture{
		name: "Duplicates",
		categories: []CategorySpec{
			{
				Name:        "Computer products",
				Description: "Products for a computer",
				Products: []ProductSpec{
					Product("Keyboard", "A computer keyboard", 2000.25, 50),
					Product("Mouse", "A computer mouse", 1520.5, 45),
					Product("KEYBOARD", "Mechanical keyboard", 2500, 10),
				},
			},
		},
	}
)
