package models

import (
	"strings"
	"time"
)

const (
	RatingActivityInactive = "inactive"
	TrendDirectionSame     = "same"
)

type Trend struct {
	Direction string `firestore:"direction" json:"direction"`
	Value     int    `firestore:"value" json:"value"`
}

type Rating struct {
	Activity       string    `firestore:"activity" json:"activity"`
	LastUpdated    time.Time `firestore:"lastUpdated" json:"lastUpdated"`
	Initials       string    `firestore:"initials" json:"initials"`
	Participations int       `firestore:"participations" json:"participations"`
	Team           string    `firestore:"team" json:"team"`
	TotalScore     int       `firestore:"totalScore" json:"totalScore"`
	Trend          Trend     `firestore:"trend" json:"trend"`
	Victories      int       `firestore:"victories" json:"victories"`
}

// User is a document in the "users" collection. The document id is the
// identity provider's subject id, duplicated into the UID field.
type User struct {
	ID        string    `firestore:"-" json:"id"`
	UID       string    `firestore:"uid" json:"uid"`
	Email     string    `firestore:"email" json:"email"`
	Name      string    `firestore:"name" json:"name"`
	Surname   string    `firestore:"surname" json:"surname"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	Rating    Rating    `firestore:"rating" json:"rating"`
}

func NewUser(uid, email, name, surname, team string, now time.Time) *User {
	return &User{
		ID:        uid,
		UID:       uid,
		Email:     email,
		Name:      name,
		Surname:   surname,
		CreatedAt: now,
		Rating: Rating{
			Activity:    RatingActivityInactive,
			LastUpdated: now,
			Initials:    Initials(name, surname),
			Team:        team,
			Trend:       Trend{Direction: TrendDirectionSame},
		},
	}
}

func Initials(name, surname string) string {
	var b strings.Builder
	for _, s := range []string{name, surname} {
		if r := []rune(s); len(r) > 0 {
			b.WriteString(strings.ToUpper(string(r[0])))
		}
	}
	return b.String()
}
