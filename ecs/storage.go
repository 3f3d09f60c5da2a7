package ecs

// store is the type-erased view of a sparseSet the world needs to clean up
// destroyed entities.
type store interface {
	remove(id entityID) bool
	has(id entityID) bool
	len() int
}

// entityStore tracks slot generations and free slots.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.alive = append(s.alive, true)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.alive[id-1] = false
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) entity(id entityID) Entity {
	return makeEntity(id, s.gens[id-1])
}
