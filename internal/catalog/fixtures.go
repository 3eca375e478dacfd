package catalog

import "gamecatalog/internal/models"

// Fixtures returns the built-in game set used to seed an empty database and
// to back the memory source when no database is configured.
func Fixtures() []models.Game {
	return []models.Game{
		{
			ID:              "5b1fbcf2-01a1-4f35-a64f-1a110a78c3ac",
			Title:           "The Witcher 3: Wild Hunt",
			Description:     "The Witcher 3: Wild Hunt is a story-driven, open world RPG set in a visually stunning fantasy universe full of meaningful choices and impactful consequences.",
			ReleaseDate:     "2015-05-19",
			Rating:          9.5,
			MetacriticScore: 93,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox", "Nintendo"},
			Genres:          models.StringList{"RPG", "Action"},
			Developer:       "CD Projekt Red",
			Publisher:       "CD Projekt",
		},
		{
			ID:              "0d2c02ae-1c2a-4f55-8a3c-6a2b0b2df001",
			Title:           "Elden Ring",
			Description:     "Elden Ring is an action role-playing game developed by FromSoftware. It features an expansive open world with challenging combat and rich lore.",
			ReleaseDate:     "2022-02-25",
			Rating:          9.6,
			MetacriticScore: 96,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox"},
			Genres:          models.StringList{"RPG", "Action"},
			Developer:       "FromSoftware",
			Publisher:       "Bandai Namco",
		},
		{
			ID:              "9f4a7c19-6a43-4f2e-bb3c-4f0a4f3f9b02",
			Title:           "Cyberpunk 2077",
			Description:     "Cyberpunk 2077 is an open-world, action-adventure RPG set in Night City, a megalopolis obsessed with power, glamour and body modification.",
			ReleaseDate:     "2020-12-10",
			Rating:          8.5,
			MetacriticScore: 86,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox"},
			Genres:          models.StringList{"RPG", "Action", "Shooter"},
			Developer:       "CD Projekt Red",
			Publisher:       "CD Projekt",
		},
		{
			ID:              "c1d5be0a-3f59-4cb1-9d0e-20f8a1c2cf03",
			Title:           "Red Dead Redemption 2",
			Description:     "Red Dead Redemption 2 is a Western-themed action-adventure game. Developed by Rockstar Games, it features a vast open world and compelling story.",
			ReleaseDate:     "2018-10-26",
			Rating:          9.7,
			MetacriticScore: 97,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox"},
			Genres:          models.StringList{"Action", "Adventure"},
			Developer:       "Rockstar Games",
			Publisher:       "Rockstar Games",
		},
		{
			ID:              "7e8b9d2c-5f1a-4e0b-8c3d-91b2a3f4cf04",
			Title:           "God of War Ragnarök",
			Description:     "God of War Ragnarök is an action-adventure game that continues the story of Kratos and Atreus as they journey through the Nine Realms.",
			ReleaseDate:     "2022-11-09",
			Rating:          9.4,
			MetacriticScore: 94,
			Platforms:       models.StringList{"PlayStation", "PC"},
			Genres:          models.StringList{"Action", "Adventure"},
			Developer:       "Santa Monica Studio",
			Publisher:       "Sony Interactive Entertainment",
		},
		{
			ID:              "2a6c4e8f-7d3b-4a1c-9e5f-60d1b2c3cf05",
			Title:           "Horizon Zero Dawn",
			Description:     "Horizon Zero Dawn is an action role-playing game set in a post-apocalyptic world overrun by robotic creatures.",
			ReleaseDate:     "2017-02-28",
			Rating:          8.9,
			MetacriticScore: 89,
			Platforms:       models.StringList{"PC", "PlayStation"},
			Genres:          models.StringList{"Action", "RPG"},
			Developer:       "Guerrilla Games",
			Publisher:       "Sony Interactive Entertainment",
		},
		{
			ID:              "4b8d6f0a-9e5c-4b3d-a17e-82f3c4d5cf06",
			Title:           "Baldur's Gate 3",
			Description:     "Baldur's Gate 3 is a story-rich, party-based RPG set in the universe of Dungeons & Dragons.",
			ReleaseDate:     "2023-08-03",
			Rating:          9.7,
			MetacriticScore: 96,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox"},
			Genres:          models.StringList{"RPG", "Strategy"},
			Developer:       "Larian Studios",
			Publisher:       "Larian Studios",
		},
		{
			ID:              "6d0f8a2c-b17e-4d5f-c39a-a4f5d6e7cf07",
			Title:           "The Legend of Zelda: Tears of the Kingdom",
			Description:     "The Legend of Zelda: Tears of the Kingdom expands the world of Hyrule into the skies with inventive building and exploration.",
			ReleaseDate:     "2023-05-12",
			Rating:          9.6,
			MetacriticScore: 96,
			Platforms:       models.StringList{"Nintendo"},
			Genres:          models.StringList{"Adventure", "Action"},
			Developer:       "Nintendo EPD",
			Publisher:       "Nintendo",
		},
		{
			ID:              "8f2a0c4e-d39a-4f7b-e5bc-c6a7e8f9cf08",
			Title:           "Grand Theft Auto V",
			Description:     "Grand Theft Auto V interweaves the stories of three criminals across the sprawling city of Los Santos.",
			ReleaseDate:     "2013-09-17",
			Rating:          9.5,
			MetacriticScore: 97,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox"},
			Genres:          models.StringList{"Action", "Adventure"},
			Developer:       "Rockstar North",
			Publisher:       "Rockstar Games",
		},
		{
			ID:              "1c4e2a6f-f5bc-4a9d-a7de-e8c9f0a1cf09",
			Title:           "Minecraft",
			Description:     "Minecraft is a sandbox game of building and survival in procedurally generated block worlds.",
			ReleaseDate:     "2011-11-18",
			Rating:          9.2,
			MetacriticScore: 93,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox", "Nintendo"},
			Genres:          models.StringList{"Adventure", "Strategy"},
			Developer:       "Mojang Studios",
			Publisher:       "Microsoft",
		},
		{
			ID:              "3e6a4c80-a7de-4c1f-c9f0-0ae1a2b3cf10",
			Title:           "Marvel's Spider-Man 2",
			Description:     "Marvel's Spider-Man 2 swings Peter Parker and Miles Morales through an expanded New York against Venom and Kraven.",
			ReleaseDate:     "2023-10-20",
			Rating:          9.1,
			MetacriticScore: 90,
			Platforms:       models.StringList{"PlayStation"},
			Genres:          models.StringList{"Action", "Adventure"},
			Developer:       "Insomniac Games",
			Publisher:       "Sony Interactive Entertainment",
		},
		{
			ID:              "5a8c6e02-c9f0-4e3b-eb12-2c03b4d5cf11",
			Title:           "Starfield",
			Description:     "Starfield is Bethesda's space epic, with more than a thousand planets to explore.",
			ReleaseDate:     "2023-09-06",
			Rating:          8.3,
			MetacriticScore: 83,
			Platforms:       models.StringList{"PC", "Xbox"},
			Genres:          models.StringList{"RPG", "Adventure"},
			Developer:       "Bethesda Game Studios",
			Publisher:       "Bethesda Softworks",
		},
		{
			ID:              "7c0e8a24-eb12-4a5d-ad34-4e25d6f7cf12",
			Title:           "Forza Horizon 5",
			Description:     "Forza Horizon 5 is an open-world racing festival set across a vibrant, evolving Mexico.",
			ReleaseDate:     "2021-11-09",
			Rating:          9.0,
			MetacriticScore: 92,
			Platforms:       models.StringList{"PC", "Xbox"},
			Genres:          models.StringList{"Sports", "Racing"},
			Developer:       "Playground Games",
			Publisher:       "Xbox Game Studios",
		},
		{
			ID:              "9e2a0c46-ad34-4c7f-cf56-6047f8a9cf13",
			Title:           "The Last of Us Part I",
			Description:     "The Last of Us Part I rebuilds the acclaimed survival story of Joel and Ellie from the ground up.",
			ReleaseDate:     "2013-06-14",
			Rating:          9.8,
			MetacriticScore: 95,
			Platforms:       models.StringList{"PlayStation", "PC"},
			Genres:          models.StringList{"Action", "Adventure"},
			Developer:       "Naughty Dog",
			Publisher:       "Sony Interactive Entertainment",
		},
		{
			ID:              "b4c2e068-cf56-4e9b-e178-8269a0b1cf14",
			Title:           "Stardew Valley",
			Description:     "Stardew Valley is a farming and life sim where you restore a run-down farm and befriend the local town.",
			ReleaseDate:     "2016-02-26",
			Rating:          9.0,
			MetacriticScore: 89,
			Platforms:       models.StringList{"PC", "PlayStation", "Xbox", "Nintendo"},
			Genres:          models.StringList{"Strategy", "Adventure"},
			Developer:       "ConcernedApe",
			Publisher:       "ConcernedApe",
		},
	}
}
