package theme

// ConvertToVariables flattens the variants into ordered custom properties.
// Variants keep their order and tokens keep theirs within each variant.
func ConvertToVariables(variants []ThemeVariant) []Variable {
	total := 0
	for _, variant := range variants {
		total += len(variant.Colors)
	}

	vars := make([]Variable, 0, total)
	for _, variant := range variants {
		for _, token := range variant.Colors {
			vars = append(vars, Variable{
				Name:  VariableName(variant.Brightness, token.Name),
				Value: token.Value,
			})
		}
	}

	return vars
}
