package inventory

// SampleInventory returns a small demo fleet used by the CLI and tests when
// no database is configured. Prices are in AED.
func SampleInventory() []Vehicle {
	return []Vehicle{
		{ID: "V001", Make: "Toyota", Model: "Camry", Year: 2024, Price: 85000, Stock: 5,
			Features: []string{"Hybrid Engine", "Toyota Safety Sense", "Apple CarPlay", "Spacious Interior"}},
		{ID: "V002", Make: "Toyota", Model: "Corolla", Year: 2024, Price: 68000, Stock: 8,
			Features: []string{"Fuel Efficient", "Lane Assist", "Touchscreen Display"}},
		{ID: "V003", Make: "Toyota", Model: "Land Cruiser", Year: 2025, Price: 310000, Stock: 2,
			Features: []string{"4WD", "7 Seats", "Leather Seats", "360 Camera"}},
		{ID: "V004", Make: "Honda", Model: "Accord", Year: 2024, Price: 92000, Stock: 4,
			Features: []string{"Turbo Engine", "Honda Sensing Safety", "Wireless CarPlay"}},
		{ID: "V005", Make: "Honda", Model: "CR-V", Year: 2023, Price: 105000, Stock: 6,
			Features: []string{"AWD", "Spacious Interior", "Panoramic Sunroof"}},
		{ID: "V006", Make: "Nissan", Model: "Altima", Year: 2023, Price: 78000, Stock: 7,
			Features: []string{"Turbo Engine", "ProPILOT Assist", "Comfort Seats"}},
		{ID: "V007", Make: "Nissan", Model: "Pathfinder", Year: 2024, Price: 145000, Stock: 3,
			Features: []string{"4WD", "7 Seats", "Navigation System", "Parking Sensors"}},
		{ID: "V008", Make: "Ford", Model: "Mustang", Year: 2024, Price: 185000, Stock: 2,
			Features: []string{"Performance Package", "Leather Seats", "Premium Audio"}},
		{ID: "V009", Make: "Ford", Model: "F-150", Year: 2023, Price: 165000, Stock: 4,
			Features: []string{"4x4", "Towing Package", "Large Cargo Bed"}},
		{ID: "V010", Make: "Bmw", Model: "X5", Year: 2025, Price: 365000, Stock: 2,
			Features: []string{"Luxury Package", "Panoramic Sunroof", "Leather Seats", "Gesture Control"}},
		{ID: "V011", Make: "Mercedes", Model: "GLE", Year: 2025, Price: 398000, Stock: 1,
			Features: []string{"Luxury Interior", "Air Suspension", "360 Camera", "Massage Seats"}},
		{ID: "V012", Make: "Tesla", Model: "Model Y", Year: 2024, Price: 215000, Stock: 5,
			Features: []string{"Electric", "Autopilot", "Glass Roof", "Touchscreen Display"}},
		{ID: "V013", Make: "Hyundai", Model: "Tucson", Year: 2024, Price: 98000, Stock: 9,
			Features: []string{"Hybrid Engine", "Smart Cruise Control", "Spacious Interior"}},
		{ID: "V014", Make: "Kia", Model: "Sportage", Year: 2023, Price: 89000, Stock: 6,
			Features: []string{"AWD", "Safety Pack", "Android Auto"}},
	}
}
