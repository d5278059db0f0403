package seeder

func Defaults() []Seeder {
	return []Seeder{
		ContinentsSeeder{},
	}
}
