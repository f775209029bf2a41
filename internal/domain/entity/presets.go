package entity

// PresetProduct entrée du catalogue cosmétique pré-détecté, proposé à
// l'initialisation d'une boutique vide.
type PresetProduct struct {
	Name     string
	Category string
}

// PresetProducts produits cosmétiques populaires (prix et stock à zéro,
// complétés ensuite par le calculateur de coûts).
var PresetProducts = []PresetProduct{
	{Name: "Vaseline Intensive Care", Category: "Crèmes & Hydratants"},
	{Name: "Vaseline Healing Jelly", Category: "Crèmes & Hydratants"},
	{Name: "Vaseline Aloe Vera", Category: "Crèmes & Hydratants"},
	{Name: "Nivea Cream", Category: "Crèmes & Hydratants"},
	{Name: "Nivea Soft", Category: "Crèmes & Hydratants"},
	{Name: "Cerave Lotion/Cream", Category: "Crèmes & Hydratants"},
	{Name: "Ponds Gold Radiance", Category: "Crèmes & Hydratants"},
	{Name: "Ponds Cold Cream", Category: "Crèmes & Hydratants"},
	{Name: "Jergens Original/Ultra", Category: "Crèmes & Hydratants"},
	{Name: "Sérum Vitamine C", Category: "Sérums & Essences"},
	{Name: "Sérum Hydratant", Category: "Sérums & Essences"},
	{Name: "Sérum Anti-Rides", Category: "Sérums & Essences"},
	{Name: "Essence Hydratante", Category: "Sérums & Essences"},
	{Name: "Savon Noir Dudu Osun", Category: "Nettoyants"},
	{Name: "Gel Nettoyant Doux", Category: "Nettoyants"},
	{Name: "Nettoyant Facial", Category: "Nettoyants"},
	{Name: "Défrisant Cheveux", Category: "Soins Cheveux"},
	{Name: "Gel Coiffant", Category: "Soins Cheveux"},
	{Name: "Huile Argan", Category: "Soins Cheveux"},
	{Name: "Huile Coco", Category: "Soins Cheveux"},
}
