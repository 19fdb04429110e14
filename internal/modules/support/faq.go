// README: Static FAQ content served to the client.
package support

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []FAQ{
	{
		Question: "How is the trip price calculated?",
		Answer:   "The price is the selected vehicle's per-kilometre rate multiplied by the route distance, rounded to the nearest whole amount. You see the total for every vehicle before you book.",
	},
	{
		Question: "Why does my trip show a price of 0?",
		Answer:   "If no driving route could be found between your locations the distance is treated as zero. Try re-selecting your pickup or destination.",
	},
	{
		Question: "Can I change my pickup or destination after selecting a car?",
		Answer:   "Yes. Changing either location clears the computed route and your car selection, and the price is recalculated once a new route is found.",
	},
	{
		Question: "When will I see my driver's details?",
		Answer:   "Driver name and phone number appear on the booking once a driver has been assigned. Newly created bookings show them as empty.",
	},
	{
		Question: "Where can I see my past trips?",
		Answer:   "Open the profile section and choose My Trips. Bookings are listed with the most recent first.",
	},
	{
		Question: "How do I report a problem with a trip?",
		Answer:   "Use Report an Issue in the profile section. You can attach a photo; our support team reviews every report.",
	},
}

// FAQs returns the help content. The slice is shared; callers must not
// modify it.
func FAQs() []FAQ {
	return faqs
}
