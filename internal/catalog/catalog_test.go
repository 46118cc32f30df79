package catalog

import "testing"

func TestSeedIDsAreStable(t *testing.T) {
	services := Services()
	if len(services) != 3 {
		t.Fatalf("got %d services, want 3", len(services))
	}
	for i, s := range services {
		if s.ID != uint64(i+1) {
			t.Fatalf("service %d has id %d", i, s.ID)
		}
	}

	courses := Courses()
	if len(courses) != 1 || courses[0].ID != 1 {
		t.Fatalf("unexpected course seed: %+v", courses)
	}
}

func TestServicesReturnsFreshSlices(t *testing.T) {
	a := Services()
	a[0].Title = "mutated"
	a[0].Features[0] = "mutated"
	b := Services()
	if b[0].Title == "mutated" || b[0].Features[0] == "mutated" {
		t.Fatal("callers share seed state")
	}
}

func TestTestimonialRatingsAreFloored(t *testing.T) {
	for i, tm := range Testimonials() {
		want := int(testimonialSeeds[i].rating)
		if tm.Rating != want {
			t.Errorf("testimonial %d rating = %d, want %d", tm.ID, tm.Rating, want)
		}
	}
}

func TestOptionValidators(t *testing.T) {
	if !ValidConsultationType("residential") || ValidConsultationType("industrial") {
		t.Error("consultation type validation wrong")
	}
	if !ValidCourseInterest("foundations") || ValidCourseInterest("mastery") {
		t.Error("course interest validation wrong")
	}
	if !ValidTimeSlot("9:00 AM") || ValidTimeSlot("9:00 am") || ValidTimeSlot("3:33 AM") {
		t.Error("time slot validation wrong")
	}

	// Every seeded service type must be bookable.
	for _, s := range Services() {
		if !ValidConsultationType(s.Type) {
			t.Errorf("service type %q is not a consultation type", s.Type)
		}
	}
}
