// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/research-catalog/pkg/types"

// Sample returns the built-in demonstration records (ids 1-4). They back the
// catalog when no records file is configured.
func Sample() []types.ResearchRecord {
	return []types.ResearchRecord{
		{
			ID: 1, Title: "Neural Network Optimization Techniques", Authors: "Smith, J.; Lee, A.", Year: 2024,
			Type:     types.TypeJournal,
			Subjects: []string{"Artificial Intelligence", "Computer Science & Engineering"},
			Keywords: []string{"Neural Networks", "Optimization", "Deep Learning"},
			Abstract: "Exploring novel approaches to optimize deep learning architectures",
			Image:    "https://unsplash.it/800/450?image=1050", Link: "details.html?id=1",
		},
		{
			ID: 2, Title: "5G Network Security Protocols", Authors: "Garcia, M.; Patel, R.", Year: 2023,
			Type:     types.TypeConference,
			Subjects: []string{"Electrical Engineering", "Networks"},
			Keywords: []string{"5G", "Security", "Protocols"},
			Abstract: "Analysis of security vulnerabilities in next-gen networks",
			Image:    "https://unsplash.it/800/450?image=1039", Link: "details.html?id=2",
		},
		{
			ID: 3, Title: "Quantum Encryption Methods", Authors: "Chen, L.; Müller, H.", Year: 2024,
			Type:     types.TypeJournal,
			Subjects: []string{"Security", "Quantum"},
			Keywords: []string{"Quantum", "Encryption", "Post-Quantum"},
			Abstract: "Breakthroughs in quantum-resistant encryption algorithms",
			Image:    "https://unsplash.it/800/450?image=1045", Link: "details.html?id=3",
		},
		{
			ID: 4, Title: "Edge Computing Architectures", Authors: "Wilson, T.; Kim, Y.", Year: 2023,
			Type:     types.TypeBook,
			Subjects: []string{"IoT", "Computer Science & Engineering"},
			Keywords: []string{"Edge", "IoT", "Distributed Systems"},
			Abstract: "Distributed computing models for IoT environments",
			Image:    "https://unsplash.it/800/450?image=1027", Link: "details.html?id=4",
		},
	}
}
