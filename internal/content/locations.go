// Package content holds the static marketing-site records: service areas,
// reviews, gallery images and the page table the sitemap is built from.
// Everything here is fixed at build time and read-only at runtime; accessors
// return copies so callers can never mutate the tables.
package content

import "github.com/ashworthrenovations/ashworth-api/internal/models"

// locations is the service-area table. Ordering matters: the sitemap emits
// location entries in this order.
var locations = []models.Location{
	{
		Slug:     "streatham",
		Name:     "Streatham",
		Postcode: "SW16",
		Zone:     models.ZoneGold,
		Region:   "South West London",
		Description: "Bathroom renovations and house extensions in Streatham, " +
			"carried out by a local team based minutes from the High Road.",
		Keywords: []string{
			"bathroom renovation streatham",
			"house extension streatham",
			"builders sw16",
		},
		Coordinates: models.Coordinates{Lat: 51.4279, Lng: -0.1235},
		Nearby:      []string{"Tooting", "Norbury", "Balham"},
		DetailedDescription: "Streatham is where Ashworth Renovations started, and it remains " +
			"the heart of our work. The housing stock here runs from late Victorian terraces " +
			"around Gleneagle Road to the wide Edwardian semis near the common, and each type " +
			"brings its own quirks: solid brick walls that need careful insulation detailing, " +
			"original floor joists that have dropped over a century, and bathrooms squeezed " +
			"into old box rooms. We have renovated dozens of bathrooms across SW16, from " +
			"compact shower rooms in converted flats to full family bathrooms with underfloor " +
			"heating and walk-in enclosures. Extensions are just as common a request, with " +
			"side-return and rear wraparound projects adding kitchen and dining space to " +
			"terraces that were never built for modern living. Because we are local, our " +
			"surveys are quick to arrange and our teams are never far if something needs " +
			"attention after handover. We know the local conservation considerations around " +
			"Streatham Common and the party wall realities of terraced streets, and we manage " +
			"both for you as part of every project we take on.",
		LocalStreets: []string{"Gleneagle Road", "Mitcham Lane", "Leigham Court Road"},
		Landmarks:    []string{"Streatham Common", "The Hideaway Jazz Club"},
		RecentProjects: []models.RecentProject{
			{Description: "Full family bathroom renovation with walk-in shower on Gleneagle Road", Year: 2024},
			{Description: "Side-return kitchen extension near Streatham Common", Year: 2023},
		},
		LSIKeywords: []string{
			"bathroom fitters streatham",
			"streatham loft and extension builders",
			"sw16 wet room installation",
			"victorian terrace renovation streatham",
		},
	},
	{
		Slug:     "tooting",
		Name:     "Tooting",
		Postcode: "SW17",
		Zone:     models.ZoneGold,
		Region:   "South West London",
		Description: "Trusted bathroom and extension specialists covering Tooting Bec " +
			"and Tooting Broadway.",
		Keywords: []string{
			"bathroom renovation tooting",
			"house extension tooting",
			"builders sw17",
		},
		Coordinates: models.Coordinates{Lat: 51.4275, Lng: -0.1682},
		Nearby:      []string{"Streatham", "Balham", "Mitcham"},
		DetailedDescription: "Tooting has changed quickly over the last decade, and much of " +
			"our work here comes from owners modernising homes that still have their original " +
			"1930s layouts. The terraces between Tooting Bec and the Broadway typically have " +
			"a single small bathroom upstairs and a narrow galley kitchen below, so the two " +
			"projects we are asked for most are a full bathroom refit and a rear extension " +
			"that opens the ground floor into one family space. Our bathroom work in SW17 " +
			"ranges from simple like-for-like replacements to complete reconfigurations that " +
			"move soil stacks and borrow space from an adjacent landing. For extensions we " +
			"handle the whole sequence: drawings, structural calculations, building control, " +
			"and the build itself with our own trades rather than subcontracted gangs. We " +
			"have worked on streets around Franciscan Road and Fishponds Road for years and " +
			"understand the shared drainage and party wall agreements those terraces involve. " +
			"Most of our Tooting enquiries come from recommendations, which is how we prefer " +
			"to grow in an area.",
		LocalStreets: []string{"Franciscan Road", "Fishponds Road", "Trinity Road"},
		Landmarks:    []string{"Tooting Bec Lido", "Tooting Market"},
		RecentProjects: []models.RecentProject{
			{Description: "Rear kitchen extension with Crittall-style doors off Franciscan Road", Year: 2024},
			{Description: "Compact ensuite added to a loft bedroom near Tooting Bec", Year: 2022},
		},
		LSIKeywords: []string{
			"bathroom fitters tooting",
			"tooting rear extension cost",
			"sw17 bathroom installation",
			"1930s house renovation tooting",
		},
	},
	{
		Slug:     "mitcham",
		Name:     "Mitcham",
		Postcode: "CR4",
		Zone:     models.ZoneRenovation,
		Region:   "South London",
		Description: "Affordable, carefully managed bathroom renovations and extensions " +
			"across Mitcham and the CR4 postcode.",
		Keywords: []string{
			"bathroom renovation mitcham",
			"house extension mitcham",
			"builders cr4",
		},
		Coordinates: models.Coordinates{Lat: 51.4009, Lng: -0.1517},
		Nearby:      []string{"Streatham", "Tooting", "Thornton Heath"},
		DetailedDescription: "Mitcham gives families more space for their money than almost " +
			"anywhere else in South London, and a sensible renovation protects exactly that " +
			"value. A lot of the housing around the Cricket Green and along London Road is " +
			"inter-war, with bathrooms and kitchens that have not been touched since the " +
			"eighties, so our CR4 projects are often complete strip-outs: new first fix " +
			"plumbing and wiring, proper tanking in wet areas, and modern sanitaryware that " +
			"suits the room rather than fighting it. Extension work in Mitcham tends to be " +
			"practical too, with single-storey rear additions and garage conversions leading " +
			"the list. We always price these with a full written specification so there are " +
			"no provisional sums hiding surprises. Our fitters live locally, our scaffolding " +
			"and skip suppliers are Mitcham firms, and we can point you to finished projects " +
			"within a short walk of the Cricket Green. If you want a straightforward quote " +
			"from a team that turns up when it says it will, we are nearby and happy to look.",
		LocalStreets: []string{"Commonside East", "London Road", "Church Road"},
		Landmarks:    []string{"Mitcham Cricket Green"},
		RecentProjects: []models.RecentProject{
			{Description: "Complete bathroom strip-out and refit near Mitcham Cricket Green", Year: 2023},
			{Description: "Garage conversion to utility and shower room on Church Road", Year: 2021},
		},
		LSIKeywords: []string{
			"bathroom fitters mitcham",
			"cr4 house extension builders",
			"mitcham garage conversion",
		},
	},
	{
		Slug:     "balham",
		Name:     "Balham",
		Postcode: "SW12",
		Zone:     models.ZoneVillage,
		Region:   "South West London",
		Description: "High-specification bathroom renovations and extensions for Balham's " +
			"Victorian terraces and mansion flats.",
		Keywords: []string{
			"bathroom renovation balham",
			"house extension balham",
			"builders sw12",
		},
		Coordinates: models.Coordinates{Lat: 51.4434, Lng: -0.1525},
		Nearby:      []string{"Tooting", "Streatham", "Clapham"},
		DetailedDescription: "Balham sits at the polished end of our patch, and the brief we " +
			"hear most often here is simple: make it feel like a boutique hotel. The " +
			"Victorian terraces between Balham High Road and the common convert beautifully, " +
			"and we have delivered bathrooms in SW12 with microcement walls, brushed brass " +
			"fittings, recessed lighting and gentle underfloor heating that transforms how " +
			"the room is used. Mansion flats around Du Cane Court bring a different " +
			"challenge, where freeholder consents and service risers shape what is possible, " +
			"and we are comfortable managing those approvals on your behalf. Extension " +
			"projects in Balham lean toward side-return glass roofs and full-width rear " +
			"additions with large sliding doors onto the garden. Specification matters at " +
			"this end of the market, so we work with a small set of trusted suppliers for " +
			"stone, joinery and glazing, and we sequence trades tightly to keep a family " +
			"home liveable during the work. References from recent Balham projects are " +
			"available, and most are within ten minutes of Hildreth Street market.",
		LocalStreets: []string{"Hildreth Street", "Bedford Hill", "Ramsden Road"},
		Landmarks:    []string{"Du Cane Court", "Tooting Bec Common"},
		RecentProjects: []models.RecentProject{
			{Description: "Boutique master ensuite with microcement finish off Bedford Hill", Year: 2024},
			{Description: "Side-return extension with structural glass roof on Ramsden Road", Year: 2022},
		},
		LSIKeywords: []string{
			"luxury bathroom balham",
			"sw12 side return extension",
			"balham mansion flat renovation",
			"bathroom design and installation balham",
		},
	},
	{
		Slug:     "thornton-heath",
		Name:     "Thornton Heath",
		Postcode: "CR7",
		Zone:     models.ZoneFoundation,
		Region:   "South London",
		Description: "Dependable bathroom and extension work for Thornton Heath homes, " +
			"priced for real budgets.",
		Keywords: []string{
			"bathroom renovation thornton heath",
			"house extension thornton heath",
			"builders cr7",
		},
		Coordinates: models.Coordinates{Lat: 51.3987, Lng: -0.1003},
		Nearby:      []string{"Norbury", "Mitcham", "Croydon"},
		DetailedDescription: "Thornton Heath is full of solid Edwardian and inter-war houses " +
			"that respond well to honest, well-planned renovation, and that is the work we " +
			"do most in CR7. Many of the homes around Grange Park and the clock tower still " +
			"have their original single bathroom, often cold and awkwardly laid out, so the " +
			"usual project is a complete refit with better heating, simple durable tiling " +
			"and storage that actually fits the room. Where families need more space we " +
			"build rear extensions and convert lofts, keeping the designs unfussy so the " +
			"budget goes into construction quality rather than decoration that dates. We " +
			"are clear about money from the first visit: a fixed written quote, staged " +
			"payments tied to progress on site, and no requests for large sums up front. " +
			"Plenty of our Thornton Heath customers found us after a bad experience with a " +
			"disappearing builder, which is why we put so much weight on references you can " +
			"actually phone. Ask and we will put you in touch with recent customers within " +
			"a few streets of the high street.",
		LocalStreets: []string{"Parchmore Road", "Brigstock Road", "Melfort Road"},
		Landmarks:    []string{"Thornton Heath Clock Tower", "Grangewood Park"},
		RecentProjects: []models.RecentProject{
			{Description: "Family bathroom refit with new heating on Parchmore Road", Year: 2023},
			{Description: "Single-storey rear extension near Grangewood Park", Year: 2020},
		},
		LSIKeywords: []string{
			"bathroom fitters thornton heath",
			"cr7 rear extension",
			"thornton heath loft conversion",
		},
	},
	{
		Slug:     "crystal-palace",
		Name:     "Crystal Palace",
		Postcode: "SE19",
		Zone:     models.ZoneVillage,
		Region:   "South East London",
		Description: "Characterful renovations for Crystal Palace's Victorian villas and " +
			"the triangle's period conversions.",
		Keywords: []string{
			"bathroom renovation crystal palace",
			"house extension crystal palace",
			"builders se19",
		},
		Coordinates: models.Coordinates{Lat: 51.4183, Lng: -0.0716},
		Nearby:      []string{"Norbury", "Thornton Heath", "Sydenham"},
		DetailedDescription: "Crystal Palace rewards renovation that respects the building, " +
			"and the Victorian villas on the ridge around Church Road are some of the most " +
			"characterful houses we work on. Ceiling heights here allow bathroom designs " +
			"that feel generous rather than squeezed: freestanding baths under sash " +
			"windows, full-height panelling, and showers built into former box rooms " +
			"without fighting the proportions of the house. Many SE19 properties are " +
			"conversions, so we are used to working flat by flat, agreeing access with " +
			"neighbours and protecting shared hallways properly. Extension work around the " +
			"triangle often involves steeply sloping gardens, and we have built rear " +
			"additions on staggered foundations that turn awkward drops into split-level " +
			"kitchens with real charm. Planning sensitivities apply near the park and " +
			"within the conservation area, and our drawings are prepared with that in mind " +
			"from the first sketch. If you are restoring period features while adding " +
			"modern comfort, that balance of old and new is exactly the work our joiners " +
			"and tilers enjoy most.",
		LocalStreets: []string{"Church Road", "Westow Hill", "Auckland Road"},
		Landmarks:    []string{"Crystal Palace Park"},
		RecentProjects: []models.RecentProject{
			{Description: "Freestanding bath and panelled family bathroom on Auckland Road", Year: 2024},
			{Description: "Split-level rear extension on a sloping garden near the park", Year: 2021},
		},
		LSIKeywords: []string{
			"period bathroom renovation crystal palace",
			"se19 house extension",
			"crystal palace flat renovation",
			"victorian villa restoration se19",
		},
	},
}

// Locations returns a copy of the service-area table in sitemap order
func Locations() []models.Location {
	out := make([]models.Location, len(locations))
	copy(out, locations)
	return out
}

// LocationBySlug returns the location with the given slug, or false
func LocationBySlug(slug string) (models.Location, bool) {
	for _, loc := range locations {
		if loc.Slug == slug {
			return loc, true
		}
	}
	return models.Location{}, false
}
