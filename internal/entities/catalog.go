package entities

// SeedCatalog returns the activities inserted into an empty store.
func SeedCatalog() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in local leagues",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Participate in school plays and improve acting skills",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"charlotte@mergington.edu", "jack@mergington.edu"},
		},
		{
			Name:            "Art Workshop",
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Fridays, 2:00 PM - 3:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"amelia@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Prepare for math competitions and solve challenging problems",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Wednesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"noah@mergington.edu", "grace@mergington.edu"},
		},
	}
}
