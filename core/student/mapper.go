package student

func FromNew(ns NewStudent) Student {
	return Student{
		Name:    ns.Name,
		Age:     ns.Age,
		Email:   ns.Email,
		Credits: ns.Credits,
	}
}

// FromUpdate leaves PasswordHash empty; the service hashes the new password when there is one.
func FromUpdate(us UpdateStudent) Student {
	return Student{
		ID:      us.ID,
		Name:    us.Name,
		Age:     us.Age,
		Email:   us.Email,
		Credits: us.Credits,
	}
}

func ToDTO(s Student) StudentDTO {
	return StudentDTO{
		ID:      s.ID,
		Name:    s.Name,
		Age:     s.Age,
		Email:   s.Email,
		Credits: s.Credits,
	}
}

func ToDTOs(students []Student) []StudentDTO {
	dtos := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		dtos = append(dtos, ToDTO(s))
	}
	return dtos
}
