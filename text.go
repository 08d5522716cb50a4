package main

var AboutMe = `I like building software that is useful and a little fun, and I am always curious
	about how things work under the hood. Most projects here started as a small idea that turned into
	an excuse to learn a new language, a new tool, or a tricky problem. Away from the keyboard you will
	find me training Muay Thai or shooting pool with friends.`

// TimelineEntry is one job or qualification on the work and education tabs.
type TimelineEntry struct {
	Title        string
	Organization string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

var WorkHistory = []TimelineEntry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		StartDate:    "Aug 2023",
		EndDate:      "Present",
		LogoPath:     "/images/TargetLogo.jpg",
		BulletPoints: []string{
			"Ran hundreds of merchandising transitions on tight timelines by organizing team workflows",
			"Kept backroom inventory and floor logistics in step through clear handoffs",
			"Standardized daily pricing and signage checks across departments",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		StartDate:    "Aug 2016",
		EndDate:      "Present",
		LogoPath:     "/images/jasonsCateringLogo.png",
		BulletPoints: []string{
			"Coordinated custom menus so every dietary requirement was met",
			"Troubleshot AV equipment and digital order tracking at events",
			"Scheduled supply deliveries between venues to cut downtime",
		},
	},
}

var Education = []TimelineEntry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		StartDate:    "Sept 2019",
		EndDate:      "May 2023",
		LogoPath:     "/images/WGU-logo.png",
		BulletPoints: []string{
			"Graduated Magna Cum Laude",
			"Coursework in data structures, algorithms and web development",
		},
	},
	{
		Title:        "Project Management",
		Organization: "CompTIA",
		StartDate:    "July 2022",
		EndDate:      "Present",
		LogoPath:     "/images/comptiaCert.png",
		BulletPoints: []string{
			"Certified in agile project management",
		},
	},
}
