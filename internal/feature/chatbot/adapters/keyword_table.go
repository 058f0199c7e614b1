package adapters

import "greenthumb_backend/internal/feature/chatbot/domain/entity"

// gardeningTopics marks a question as on-topic when any of them appears in it.
var gardeningTopics = []string{
	"plante", "tomate", "semis", "arrosage", "sol", "engrais", "compost", "rosier", "courgette",
	"puceron", "basilic", "menthe", "lune", "mildiou", "carotte", "limace", "fleur", "potager",
	"ombre", "hortensia", "paillage", "maladie", "fruit", "arbre", "jardin", "culture",
}

// gardeningRules are tried in order; the first rule whose keywords all appear wins.
var gardeningRules = []entity.Rule{
	{Keywords: []string{"tomate", "arroser"}, Reply: "🍅 Les tomates doivent être arrosées 2 à 3 fois par semaine, au pied, sans mouiller les feuilles."},
	{Keywords: []string{"engrais", "naturel"}, Reply: "🌿 Le compost, le purin d'ortie ou le fumier décomposé sont parfaits comme engrais naturels."},
	{Keywords: []string{"mildiou"}, Reply: "🐛 Le mildiou attaque souvent les tomates. Arrosez sans toucher les feuilles et espacez bien vos plants."},
	{Keywords: []string{"semis", "carotte"}, Reply: "🥕 Semez les carottes de mars à juillet, dans un sol meuble, sans croûte en surface."},
	{Keywords: []string{"rosier", "tailler"}, Reply: "🌹 Taillez les rosiers après les gelées, en supprimant les bois morts et en aérant la plante."},
	{Keywords: []string{"compost"}, Reply: "♻️ Le compost doit mélanger matières sèches (feuilles, carton) et matières humides (épluchures, herbe)."},
	{Keywords: []string{"limace"}, Reply: "🐌 Contre les limaces : coquilles d'œufs broyées, cendre ou piège à bière autour des plants."},
	{Keywords: []string{"menthe", "envahissante"}, Reply: "🌱 La menthe est très envahissante : cultivez-la en pot pour la contenir."},
	{Keywords: []string{"courgette"}, Reply: "🥒 Les courgettes ont besoin de soleil, de chaleur et d’un arrosage au pied, jamais sur les feuilles."},
	{Keywords: []string{"plante", "ombre"}, Reply: "🌳 Essayez les fougères, hostas, impatiens ou lierres : elles aiment les zones ombragées."},
	{Keywords: []string{"préparer", "sol"}, Reply: "🌱 Pour préparer un bon sol, analysez-le, nettoyez-le, ameublissez, ajoutez du compost, puis laissez-le reposer quelques jours avant de planter."},
	{Keywords: []string{"puceron", "traiter"}, Reply: "🐞 Pulvérisez une solution à base de savon noir ou utilisez des coccinelles pour éliminer naturellement les pucerons."},
	{Keywords: []string{"lune", "jardinage"}, Reply: "🌕 Suivez le calendrier lunaire : semis et récoltes en lune montante, entretien et taille en lune descendante."},
	{Keywords: []string{"planter", "pluie"}, Reply: "☔ Évitez de planter juste avant ou pendant de fortes pluies pour ne pas noyer les racines ou tasser le sol."},
	{Keywords: []string{"semis", "printemps"}, Reply: "🌼 En mars et avril, semez radis, laitue, carottes, pois et épinards, selon votre climat et la température du sol."},
	{Keywords: []string{"basilic", "entretien"}, Reply: "🌿 Arrosez régulièrement le basilic sans mouiller les feuilles, pincez les fleurs et placez-le en plein soleil."},
	{Keywords: []string{"hortensia", "couleur"}, Reply: "🌸 Pour changer la couleur des hortensias, modifiez le pH du sol : sol acide pour le bleu, basique pour le rose."},
	{Keywords: []string{"rotation", "culture"}, Reply: "🔄 Alternez les familles de légumes chaque année pour préserver le sol et limiter les maladies."},
	{Keywords: []string{"engrais", "efficace"}, Reply: "💪 Le purin d’ortie est très efficace, riche en azote ; le compost mûr et la consoude stimulent aussi la croissance."},
	{Keywords: []string{"travaux", "automne"}, Reply: "🍂 En automne, récoltez, nettoyez le jardin, apportez du compost, plantez les bulbes et protégez les plantes sensibles."},
}

// StaticKnowledge serves the built-in gardening table.
type StaticKnowledge struct{}

// NewStaticKnowledge returns the built-in knowledge base.
func NewStaticKnowledge() StaticKnowledge {
	return StaticKnowledge{}
}

// Topics returns the on-topic markers.
func (StaticKnowledge) Topics() []string {
	return gardeningTopics
}

// Rules returns the answer rules in priority order.
func (StaticKnowledge) Rules() []entity.Rule {
	return gardeningRules
}
