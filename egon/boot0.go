/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  boot0.go - Informe complet d'una imatge boot0/boot1.
 *
 */

package egon;

import (
  "fmt"
  "io"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

// Descodifica una imatge eGON i escriu l'informe en el fitxer
// indicat. El primer sector ja està llegit en sector; en mode verbose
// la resta de la imatge es llig seqüencialment de f per comprovar el
// checksum, en cas contrari f no es toca i és el cridador qui ha
// d'avançar. Torna el nombre de sectors que queden darrere del primer
// (filesize/512 - 1); en cas d'error torna 0, però l'error és el que
// distingeix una imatge buida d'una descodificació fallida.
func OutputBoot0Info(

  sector  []byte,
  f       io.Reader,
  file    io.Writer,
  prefix  string,
  verbose bool,

) (uint32,error) {

  // Capçalera primària
  header,err := ReadHeader ( sector, file )
  if err != nil { return 0,err }

  if verbose {

    // Preparació impressió
    P := fmt.Fprintf

    // Capçalera
    if header.IsBoot1 () {
      P(file,"%sFound eGON header (%s).\n",prefix,MAGIC_BT1)
    } else {
      P(file,"%sFound eGON header (%s).\n",prefix,MAGIC_BT0)
    }
    P(file,"%sBoot0 Filesize is %dkB.\n",prefix,header.Filesize>>10)
    P(file,"\n")
    header.PrintInfo ( file, prefix )

    // Checksum
    if _,err := VerifyChecksum ( header, sector, f,
      file, prefix ); err != nil {
      return 0,err
    }

    // Bloc de paràmetres de la DRAM
    secondary,err := ReadSecondaryHeader ( sector, header.HeaderSize )
    if err != nil { return 0,err }
    PrintDramParam ( file, prefix, secondary.DramParam[:] )

  }

  return header.SectorCount ()-1,nil

} // end OutputBoot0Info
