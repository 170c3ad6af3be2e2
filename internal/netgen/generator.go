// Package netgen produces synthetic road networks for experiments:
// a seeded scatter of junctions around a city centre, wired by
// nearest-neighbour roads with randomised traffic, quality and
// per-vehicle penalty attributes. The same seed always yields the
// same network.
package netgen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/jaswdr/faker"
)

const (
	minEdgeDistanceKm = 0.05
	maxQualityFactor  = 1.5
	maxRoadCurvature  = 1.3
)

type Generator struct {
	config *models.Config
	rng    *rand.Rand
	faker  faker.Faker
}

func New(config *models.Config) *Generator {
	seed := int64(config.Seed)
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		faker:  faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// Generate builds a connected network of generator_nodes junctions
// inside the configured urban radius. Every junction gets roads to its
// generator_degree nearest neighbours; a configurable fraction stays
// one-way, the rest appear as edge pairs.
func (g *Generator) Generate() (*models.NetworkDefinition, error) {
	count := g.config.GeneratorNodes
	if count < 2 {
		return nil, fmt.Errorf("netgen: need at least 2 nodes, got %d", count)
	}
	degree := g.config.GeneratorDegree
	if degree < 1 {
		degree = 1
	}

	center := models.Location{Lat: g.config.CityLat, Lon: g.config.CityLon}
	nodes := make([]models.Node, count)
	nodes[0] = models.Node{ID: "n0", Name: g.faker.Address().StreetName(), Location: center}
	for i := 1; i < count; i++ {
		// sqrt keeps the scatter uniform over the disc area rather than
		// clustering at the centre.
		distance := g.config.UrbanRadius * math.Sqrt(g.rng.Float64())
		bearing := g.rng.Float64() * 2 * math.Pi
		nodes[i] = models.Node{
			ID:       fmt.Sprintf("n%d", i),
			Name:     g.faker.Address().StreetName(),
			Location: offsetLocation(center, distance, bearing),
		}
	}

	edges := make(map[models.EdgeKey]models.Edge)
	for i := range nodes {
		for _, j := range g.nearestNeighbors(nodes, i, degree) {
			g.addRoad(edges, nodes[i], nodes[j])
		}
	}
	g.connectComponents(edges, nodes)

	def := &models.NetworkDefinition{
		Name:  fmt.Sprintf("%s synthetic network (seed %d)", g.config.CityName, g.config.Seed),
		Nodes: nodes,
	}
	keys := make([]models.EdgeKey, 0, len(edges))
	for key := range edges {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].From != keys[b].From {
			return keys[a].From < keys[b].From
		}
		return keys[a].To < keys[b].To
	})
	for _, key := range keys {
		def.Edges = append(def.Edges, edges[key])
	}
	return def, nil
}

func (g *Generator) nearestNeighbors(nodes []models.Node, from, degree int) []int {
	type candidate struct {
		index    int
		distance float64
	}
	candidates := make([]candidate, 0, len(nodes)-1)
	for i := range nodes {
		if i == from {
			continue
		}
		candidates = append(candidates, candidate{
			index:    i,
			distance: nodes[from].Location.DistanceKm(nodes[i].Location),
		})
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].distance != candidates[b].distance {
			return candidates[a].distance < candidates[b].distance
		}
		return candidates[a].index < candidates[b].index
	})
	if degree > len(candidates) {
		degree = len(candidates)
	}
	picked := make([]int, degree)
	for i := 0; i < degree; i++ {
		picked[i] = candidates[i].index
	}
	return picked
}

// addRoad links two junctions. Both directions share geometry but get
// independent traffic draws, so rush-hour asymmetry shows up in
// generated networks.
func (g *Generator) addRoad(edges map[models.EdgeKey]models.Edge, from, to models.Node) {
	distance := from.Location.DistanceKm(to.Location) * (1 + (maxRoadCurvature-1)*g.rng.Float64())
	if distance < minEdgeDistanceKm {
		distance = minEdgeDistanceKm
	}
	quality := 1 + (maxQualityFactor-1)*g.rng.Float64()

	g.addDirected(edges, from.ID, to.ID, distance, quality)
	if g.rng.Float64() >= g.config.GeneratorOneWay {
		g.addDirected(edges, to.ID, from.ID, distance, quality)
	}
}

func (g *Generator) addDirected(edges map[models.EdgeKey]models.Edge, from, to string, distance, quality float64) {
	key := models.EdgeKey{From: from, To: to}
	if _, exists := edges[key]; exists {
		return
	}
	maxTraffic := g.config.GeneratorMaxTraf
	if maxTraffic < 1 {
		maxTraffic = 1
	}
	edges[key] = models.Edge{
		From:             from,
		To:               to,
		Distance:         distance,
		TrafficFactor:    1 + (maxTraffic-1)*g.rng.Float64(),
		QualityFactor:    quality,
		VehiclePenalties: penaltiesForQuality(quality),
	}
}

// penaltiesForQuality maps road quality to per-vehicle penalties: good
// roads penalise nobody, rough roads penalise three-wheelers hardest.
func penaltiesForQuality(quality float64) map[string]float64 {
	switch {
	case quality < 1.15:
		return map[string]float64{models.VehicleMotorcycle: 1.0, models.VehicleThreeWheeler: 1.0}
	case quality < 1.35:
		return map[string]float64{models.VehicleMotorcycle: 1.1, models.VehicleThreeWheeler: 1.3}
	default:
		return map[string]float64{models.VehicleMotorcycle: 1.3, models.VehicleThreeWheeler: 1.8}
	}
}

// connectComponents stitches disconnected clusters to the component
// containing n0 with two-way roads, so generated networks always admit
// a route between any undirected pair.
func (g *Generator) connectComponents(edges map[models.EdgeKey]models.Edge, nodes []models.Node) {
	for {
		reachable := undirectedReachable(edges, nodes, 0)
		if len(reachable) == len(nodes) {
			return
		}

		// Closest pair across the cut, deterministic for a fixed seed.
		bestInside, bestOutside := -1, -1
		bestDistance := math.Inf(1)
		for i := range nodes {
			if !reachable[i] {
				continue
			}
			for j := range nodes {
				if reachable[j] {
					continue
				}
				d := nodes[i].Location.DistanceKm(nodes[j].Location)
				if d < bestDistance {
					bestDistance = d
					bestInside, bestOutside = i, j
				}
			}
		}

		distance := math.Max(bestDistance, minEdgeDistanceKm)
		quality := 1 + (maxQualityFactor-1)*g.rng.Float64()
		g.addDirected(edges, nodes[bestInside].ID, nodes[bestOutside].ID, distance, quality)
		g.addDirected(edges, nodes[bestOutside].ID, nodes[bestInside].ID, distance, quality)
	}
}

// offsetLocation moves a point distKm along the given bearing using
// the equirectangular approximation, fine at urban scale.
func offsetLocation(center models.Location, distKm, bearing float64) models.Location {
	const kmPerDegreeLat = 110.574
	kmPerDegreeLon := 111.320 * math.Cos(center.Lat*math.Pi/180)
	if kmPerDegreeLon < 1 {
		kmPerDegreeLon = 1
	}
	return models.Location{
		Lat: center.Lat + (distKm*math.Cos(bearing))/kmPerDegreeLat,
		Lon: center.Lon + (distKm*math.Sin(bearing))/kmPerDegreeLon,
	}
}

func undirectedReachable(edges map[models.EdgeKey]models.Edge, nodes []models.Node, start int) map[int]bool {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}
	adjacency := make(map[int][]int)
	for key := range edges {
		a, b := index[key.From], index[key.To]
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
	}

	reachable := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[current] {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}
	return reachable
}
