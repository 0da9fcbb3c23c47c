package models

// AttendanceStatus defines the possible status values for an attendance record.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// Role defines the roles a user can hold at a plantel.
type Role string

const (
	RoleTeacher       Role = "teacher"
	RoleDirector      Role = "director"
	RoleAdministrator Role = "administrator"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleDirector, RoleAdministrator:
		return true
	}
	return false
}

// ActivityKind defines the kinds of gradable activities.
type ActivityKind string

const (
	KindExam          ActivityKind = "exam"
	KindHomework      ActivityKind = "homework"
	KindProject       ActivityKind = "project"
	KindParticipation ActivityKind = "participation"
	KindOther         ActivityKind = "other"
)

// Valid returns true when the kind is a supported value.
func (k ActivityKind) Valid() bool {
	switch k {
	case KindExam, KindHomework, KindProject, KindParticipation, KindOther:
		return true
	}
	return false
}
