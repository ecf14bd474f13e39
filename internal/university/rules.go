package university

import (
	"strings"

	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// AttendLecture sits one lecture of the enrolled course: pays the lecture
// fee, advances progress, and completes the course once enough lectures are
// in. Completion records the course, updates the displayed qualification and
// clears the enrollment.
func AttendLecture() life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		course, ok := CourseByID(s.EnrolledCourse)
		if !ok {
			return life.Failure("You're not enrolled in any course. Enroll in a course first!")
		}
		if s.Money < course.CostPerLecture {
			return life.Failure("Not enough money! A lecture in %s costs $%d.", course.Name, course.CostPerLecture)
		}

		s.Money -= course.CostPerLecture
		s.LecturesCompleted++
		if s.LecturesCompleted >= course.LecturesRequired {
			s.CompletedCourses = append(s.CompletedCourses, course.ID)
			s.Qualification = course.Name
			s.EnrolledCourse = ""
			s.LecturesCompleted = 0
			return life.Success("You completed %s! Your qualification is now %s.", course.Name, course.Name)
		}
		return life.Success("You attended a lecture in %s (%d/%d lectures completed).",
			course.Name, s.LecturesCompleted, course.LecturesRequired)
	}
}

// EnrollCourse enrolls the player in the given course, replacing any current
// enrollment. Switching discards the abandoned course's lecture progress.
func EnrollCourse(courseID string) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		course, ok := CourseByID(courseID)
		if !ok {
			return life.Failure("Course not found!")
		}
		if s.HasCompleted(course.ID) {
			return life.Failure("You've already completed %s!", course.Name)
		}
		if s.EnrolledCourse == course.ID {
			return life.Failure("You're already enrolled in %s!", course.Name)
		}
		if missing := MissingPrerequisites(course, s.CompletedCourses); len(missing) > 0 {
			names := make([]string, 0, len(missing))
			for _, id := range missing {
				if prereq, ok := CourseByID(id); ok {
					names = append(names, prereq.Name)
				} else {
					names = append(names, id)
				}
			}
			if course.PrereqMode == PrereqAny {
				return life.Failure("You need to complete one of %s first!", strings.Join(names, " or "))
			}
			return life.Failure("You need to complete %s first!", strings.Join(names, " and "))
		}

		previous, hadPrevious := CourseByID(s.EnrolledCourse)
		s.EnrolledCourse = course.ID
		s.LecturesCompleted = 0
		if hadPrevious {
			return life.Success("You switched to %s! Your progress in %s was discarded.", course.Name, previous.Name)
		}
		return life.Success("You enrolled in %s! Attend %d lectures to complete it.", course.Name, course.LecturesRequired)
	}
}
