// Package catalog holds the static reference data served by the public
// site: the consultation services, the course listing and client
// testimonials, together with the option lists the forms validate
// against. Both storage backends seed themselves from this package, so
// the ids here are load-bearing: the booking form filters by service
// type and the UI links courses by id. Never renumber them.
package catalog

import (
	"math"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// ConsultationTypes are the accepted values for a booking's
// consultationType field. They match the Type of the seeded services.
var ConsultationTypes = []string{"residential", "commercial", "personal"}

// CourseInterests are the accepted values for a course inquiry's
// courseInterest field.
var CourseInterests = []string{"foundations"}

// TimeSlots are the published booking slots. The booking form offers
// exactly these strings and the API rejects anything else.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"7:00 PM",
	"9:00 PM",
	"10:00 PM",
}

// ValidConsultationType reports whether t is an offered consultation type.
func ValidConsultationType(t string) bool { return contains(ConsultationTypes, t) }

// ValidCourseInterest reports whether v is a known course-interest option.
func ValidCourseInterest(v string) bool { return contains(CourseInterests, v) }

// ValidTimeSlot reports whether s is one of the published slots.
func ValidTimeSlot(s string) bool { return contains(TimeSlots, s) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Services returns the seed service catalog. A fresh slice is returned
// on every call so stores may retain it without sharing state.
func Services() []model.Service {
	return []model.Service{
		{
			ID:          1,
			Title:       "Home & Property Consultation",
			Description: "Comprehensive analysis of your living space to identify energy imbalances and provide solutions for a harmonious home.",
			Price:       "Starting at Rs.18999",
			Type:        "residential",
			Features:    []string{"Full property assessment", "Personalized remedies", "45-day follow-up support"},
			ImageURL:    "https://ik.imagekit.io/sreeGuru/IMG20240519122210.jpg?updatedAt=1745079568893",
		},
		{
			ID:          2,
			Title:       "Business & Office Consultation",
			Description: "Optimize your workspace for productivity, prosperity and positive team dynamics with Vasthu principles.",
			Price:       "Starting at Rs.23999",
			Type:        "commercial",
			Features:    []string{"Office layout analysis", "Prosperity enhancement", "60-day implementation support"},
			ImageURL:    "https://ik.imagekit.io/sreeGuru/IMG20240915082223.jpg?updatedAt=1745079551218",
		},
		{
			ID:          3,
			Title:       "Personal Astrology Reading",
			Description: "In-depth analysis of your birth chart to understand your life path, challenges and opportunities for spiritual growth.",
			Price:       "Starting at Rs.1111",
			Type:        "personal",
			Features:    []string{"Comprehensive birth chart", "Personalized guidance", "Digital report included"},
			ImageURL:    "https://ik.imagekit.io/sreeGuru/IMG20240625231416.jpg?updatedAt=1745079560279",
		},
	}
}

// Courses returns the seed course catalog.
func Courses() []model.Course {
	return []model.Course{
		{
			ID:          1,
			Title:       "Unlock the Secrets of Living Space Science ( Vasthu) with Astrology",
			Description: "This is not just a Vasthu class — it’s a deep-dive into the ancient Indian science of life energy surrounding us at home, combined with the wisdom of Astrology. Learn how your home’s design affects your life and how to identify and fix imbalances. Perfect for beginners seeking to understand this ancient wisdom & correct it by themselves as an expert",
			Price:       "Rs.23,333 INR | $299",
			Duration:    "8 Weekends",
			Hours:       "12 Hours",
			Level:       "Beginner",
			Learnings: []string{
				"Vasthu + Astrology: Understand how planetary influences and spatial energy work together.",
				"The five elements and their significance",
				"Personalized Remedies: Get customized remedies for the home you register.",
				"Lifetime Guidance: Ongoing support for any Vasthu-related queries for the same house — forever!",
			},
		},
	}
}

// seedTestimonial keeps the source rating fractional; both backends
// floor it when seeding, which is the observed contract (4.5 -> 4).
type seedTestimonial struct {
	id      uint64
	name    string
	role    string
	content string
	rating  float64
}

var testimonialSeeds = []seedTestimonial{
	{
		id:      1,
		name:    "Kamal Babu",
		role:    "Residential Client",
		content: "Sree Guru visited our home and he patiently listened all our thoughts, we were discussing few challenges or doubts in our mind post watching a vasthu video at youtube. He explained about other challenges in our home which is impacting our child studies and focus. That was out of the box and it was true we were able to realize it and made the changes he has mentioned in our pooja room. Truly its a science which he able to connect it thru his real life experience and learning from multiple Guru's. Thank you Sree ..",
		rating:  5,
	},
	{
		id:      2,
		name:    "Rajesh Chidambaram",
		role:    "Residential Client",
		content: "Sree Guru help me to change my mind of altering my house ( suggested by another vasthu expert ) , he explained me in detail why the changes other expert mentioned will not work with complete details. He made me to understand the basics of this science and helped to see the way the science works. This is not some psuedo-science. A tree in my backyard also cause a imbalance ! Thank you Sree ..",
		rating:  5,
	},
	{
		id:      3,
		name:    "Hamsalatha",
		role:    "Residential Client",
		content: "We have conneccted with Sree Guru for our new home, i know little vasthu but just for a validation i connected with him to see his opinion on a property which we have finalized. Sree Guru helped us to see the multiple vasthu defects in the property which we thought was a perfect one ! God only saved us through him then he patiently helped to review multiple floor plans and able to found a perfect home. I validated that floor plan again with another expert , he also confirmed the house which he has suggested is perfect one ! Thank you Sree & he guided us right time to make the agreement, bank loan & even the Grahaprevesam day.. He is All-in-one and did things as it is like purchasing a home for him.",
		rating:  5,
	},
}

// Testimonials returns the seed testimonials with ratings
// floor-truncated to whole numbers.
func Testimonials() []model.Testimonial {
	out := make([]model.Testimonial, 0, len(testimonialSeeds))
	for _, s := range testimonialSeeds {
		out = append(out, model.Testimonial{
			ID:      s.id,
			Name:    s.name,
			Role:    s.role,
			Content: s.content,
			Rating:  int(math.Floor(s.rating)),
		})
	}
	return out
}
